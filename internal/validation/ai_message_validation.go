package validation

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/pipeline"
)

// AiMessageValidation checks presence only. Whether the role is one of the
// allowed values is enforced by the ai_message table.
type AiMessageValidation struct{}

var _ pipeline.Validator[dto.AiMessageRequest] = (*AiMessageValidation)(nil)

func NewAiMessageValidation() *AiMessageValidation {
	return &AiMessageValidation{}
}

func (v *AiMessageValidation) Validate(req *dto.AiMessageRequest) (outcome pipeline.Outcome) {
	defer recoverAsRejection(&outcome)

	if req == nil {
		return pipeline.Reject(requestAbsent)
	}
	return checkRequired(req)
}
