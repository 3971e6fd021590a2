package validator

// Required validates that a string is not empty.
// Whitespace counts as content; trim before validating if that is not wanted.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}
