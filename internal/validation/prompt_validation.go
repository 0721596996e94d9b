package validation

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/pipeline"
)

type PromptValidation struct{}

var _ pipeline.Validator[dto.PromptRequest] = (*PromptValidation)(nil)

func NewPromptValidation() *PromptValidation {
	return &PromptValidation{}
}

func (v *PromptValidation) Validate(req *dto.PromptRequest) (outcome pipeline.Outcome) {
	defer recoverAsRejection(&outcome)

	if req == nil {
		return pipeline.Reject(requestAbsent)
	}
	return checkRequired(req)
}
