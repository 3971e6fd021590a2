package validator

import (
	"fmt"
	"regexp"
	"sync"
)

var patternCache sync.Map // pattern string -> *regexp.Regexp

// compile returns a cached compiled pattern. Panics on invalid patterns,
// which are programmer errors.
func compile(pattern string) *regexp.Regexp {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	actual, _ := patternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}

// MatchesRegex validates that value matches pattern. The pattern is used as
// given: it is only anchored if it contains ^ and $.
func MatchesRegex(field, value string, pattern string, description string) Rule {
	regex := compile(pattern)
	return Rule{
		Check: func() bool {
			if value == "" {
				return false
			}
			return regex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s pattern", description),
		},
	}
}
