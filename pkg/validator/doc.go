// Package validator provides small, composable validation rules for string
// form input.
//
// A Rule couples a boolean Check with the ValidationError reported when the
// check fails. Rules are evaluated either all at once with Apply, which
// aggregates every failure into a ValidationErrors value that satisfies the
// error interface, or in order with First, which stops at the first failure.
// First is what field-level validation uses when only one message per field
// should be shown.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.MatchesRegex("email", email, `\S+@\S+\.\S+`, "email"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Get("email")
//	}
//
// Every constructor returns a Rule with a generic English message. Callers
// that own user-facing copy replace it with Rule.WithMessage:
//
//	validator.Required("email", email).WithMessage("Email is required")
//
// # Empty values
//
// Format rules (MatchesRegex, AlphaNumericPassword, Digits,
// PhoneWithCountryCode) fail on the empty string. Pair them with Required and
// evaluate with First so that an empty value reports the required message
// rather than the format one.
//
// The package holds no state beyond precompiled patterns and is safe for
// concurrent use.
package validator
