package response

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse — форма ошибки, ожидаемая клиентом:
// {"message": "...", "errors": [{"field": "...", "message": "..."}]}
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Error(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// ValidationError разворачивает ошибки validator/v10 в пофилдовый список
func ValidationError(err error) ErrorResponse {
	resp := ErrorResponse{Message: "Validation failed"}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		resp.Errors = append(resp.Errors, FieldError{Field: "", Message: err.Error()})
		return resp
	}

	for _, fe := range verrs {
		resp.Errors = append(resp.Errors, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}

	return resp
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
