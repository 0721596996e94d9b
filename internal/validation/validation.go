package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"ai-assistant-be/internal/pipeline"

	"github.com/go-playground/validator/v10"
)

const requestAbsent = "request is absent"

var validate = newValidator()

// newValidator reports fields by their JSON name so rejection reasons match
// what the caller sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRequired rejects on the first `validate:"required"` field that is
// missing or empty, in declaration order.
func checkRequired(req interface{}) pipeline.Outcome {
	err := validate.Struct(req)
	if err == nil {
		return pipeline.Accept()
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return pipeline.Reject(fmt.Sprintf("%s is absent", verrs[0].Field()))
	}
	return pipeline.Reject(err.Error())
}

// recoverAsRejection turns a panic inside Validate into a rejection.
func recoverAsRejection(outcome *pipeline.Outcome) {
	if r := recover(); r != nil {
		*outcome = pipeline.Reject(fmt.Sprint(r))
	}
}
