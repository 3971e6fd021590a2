package validator

import (
	"fmt"
	"regexp"
)

// nonSpace matches one character that is not whitespace in the ECMAScript
// sense. RE2's \S alone still admits \v, the Unicode space separators and
// the byte order mark.
const nonSpace = `[^\s\v\p{Z}\x{FEFF}]`

var (
	// Plus sign, 1-3 digit country code, 10 digit subscriber number.
	phoneWithCountryCodeRegex = regexp.MustCompile(`^\+\d{1,3}\d{10}$`)

	looseEmailPattern = nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`
)

// LooseEmail validates that value contains a non-space run, an @, another
// non-space run, a dot and a final non-space run. It is a shape check only and
// accepts addresses an RFC 5322 parser would reject.
func LooseEmail(field, value string) Rule {
	return MatchesRegex(field, value, looseEmailPattern, "email").
		WithMessage("must be a valid email address")
}

// PhoneWithCountryCode validates "+" followed by a 1-3 digit country code and
// exactly 10 more digits, with no separators.
func PhoneWithCountryCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneWithCountryCodeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a phone number with country code, e.g. +11234567890",
		},
	}
}

// Digits validates that value consists of exactly n ASCII digits.
func Digits(field, value string, n int) Rule {
	regex := compile(fmt.Sprintf(`^[0-9]{%d}$`, n))
	return Rule{
		Check: func() bool {
			return regex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be exactly %d digits", n),
		},
	}
}
