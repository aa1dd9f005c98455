package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/technova-labs/portal-go/pkg/response"
)

// InitValidation makes the validator report json field names, so a bad
// "firstName" is flagged as "firstName" and not "FirstName". Call once before
// serving.
func InitValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validationErrors translates a binding error into a per-field message map.
// Non-validator errors (malformed JSON, wrong types) become a single payload
// entry so the client still gets a 400 with a reason.
func validationErrors(err error) response.ValidationErrorResponse {
	out := response.ValidationErrorResponse{
		Success: false,
		Message: "Invalid form data",
		Errors:  map[string]string{},
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out.Errors[fe.Field()] = fieldMessage(fe)
		}
		return out
	}

	out.Errors["payload"] = "Request body could not be parsed"
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("Must be a date in %s format", fe.Param())
	default:
		return "Invalid value"
	}
}
