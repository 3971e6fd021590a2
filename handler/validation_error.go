package handler

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/signupform/pkg/validator"
)

// ValidationError maps a field to its messages. It renders as a 422.
type ValidationError url.Values

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FromValidationErrors converts validator failures, keeping their order per field.
func FromValidationErrors(errs validator.ValidationErrors) ValidationError {
	out := make(ValidationError, len(errs))
	for _, e := range errs {
		out.Add(e.Field, e.Message)
	}
	return out
}

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for field, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
