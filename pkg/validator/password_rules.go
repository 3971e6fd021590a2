package validator

import (
	"fmt"
	"regexp"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	alnumRegex     = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// AlphaNumericPassword validates a password made only of ASCII letters and
// digits, at least minLength long, with at least one lowercase letter, one
// uppercase letter and one digit.
//
// RE2 has no lookahead, so the composite rule is expressed as one character
// class check plus three presence checks.
func AlphaNumericPassword(field, value string, minLength int) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < minLength || !alnumRegex.MatchString(value) {
				return false
			}
			return lowercaseRegex.MatchString(value) &&
				uppercaseRegex.MatchString(value) &&
				digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf(
				"must be at least %d letters or digits with an uppercase letter, a lowercase letter and a digit",
				minLength,
			),
		},
	}
}
