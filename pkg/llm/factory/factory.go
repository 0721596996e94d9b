package factory

import (
	"fmt"

	"ai-assistant-be/pkg/llm"
	"ai-assistant-be/pkg/llm/stub"
)

func NewLLMProvider(providerType, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "", "stub":
		return stub.NewProvider(modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
