// Package stub answers prompts without calling a model. It echoes the last
// user message so responses stay deterministic.
package stub

import (
	"context"
	"fmt"
	"strings"

	"ai-assistant-be/pkg/llm"
)

var _ llm.LLMProvider = &Provider{}

type Provider struct {
	modelName string
}

func NewProvider(modelName string) *Provider {
	return &Provider{modelName: modelName}
}

func (p *Provider) ModelName() string {
	return p.modelName
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (*llm.Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := llm.ApplyOptions(options...)
	model := p.modelName
	if opts.Model != "" {
		model = opts.Model
	}

	var question string
	tokens := 0
	for _, m := range history {
		tokens += len(strings.Fields(m.Content))
		if m.Role == "user" {
			question = m.Content
		}
	}

	content := fmt.Sprintf("[%s] received: %s", model, question)
	tokens += len(strings.Fields(content))

	return &llm.Completion{
		Content:    content,
		Model:      model,
		TokensUsed: tokens,
	}, nil
}
