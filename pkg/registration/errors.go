package registration

import (
	"errors"
	"fmt"
)

var (
	// ErrFormInvalid is returned by Submit when the full validation pass fails.
	ErrFormInvalid = errors.New("form is not valid")

	// ErrFormSubmitted is returned for edits or submits on an already submitted form.
	ErrFormSubmitted = errors.New("form already submitted")

	// ErrUnknownField matches any ErrUnknownFieldName via errors.Is.
	ErrUnknownField = errors.New("unknown field")
)

// ErrUnknownFieldName reports a field name that is not part of the form.
type ErrUnknownFieldName struct {
	Name string
}

func (e *ErrUnknownFieldName) Error() string {
	return fmt.Sprintf("unknown field %q", e.Name)
}

func (e *ErrUnknownFieldName) Is(target error) bool {
	return target == ErrUnknownField
}

func NewErrUnknownField(name string) *ErrUnknownFieldName {
	return &ErrUnknownFieldName{Name: name}
}
