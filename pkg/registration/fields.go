package registration

import (
	"maps"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/signupform/pkg/validator"
)

// FieldName identifies one of the form's fields.
type FieldName string

const (
	FirstName FieldName = "firstName"
	LastName  FieldName = "lastName"
	Username  FieldName = "username"
	Email     FieldName = "email"
	Password  FieldName = "password"
	PhoneNo   FieldName = "phoneNo"
	Country   FieldName = "country"
	City      FieldName = "city"
	PanNo     FieldName = "panNo"
	AadharNo  FieldName = "aadharNo"
)

// AllFields lists every field in form order.
var AllFields = []FieldName{
	FirstName, LastName, Username, Email, Password,
	PhoneNo, Country, City, PanNo, AadharNo,
}

var knownFields = func() map[FieldName]bool {
	m := make(map[FieldName]bool, len(AllFields))
	for _, f := range AllFields {
		m[f] = true
	}
	return m
}()

// ParseFieldName converts s to a FieldName, rejecting names that are not part of the form.
func ParseFieldName(s string) (FieldName, error) {
	name := FieldName(s)
	if !name.Valid() {
		return "", NewErrUnknownField(s)
	}
	return name, nil
}

// Valid reports whether the name is one of the form's fields.
func (n FieldName) Valid() bool {
	return knownFields[n]
}

func (n FieldName) String() string {
	return string(n)
}

// Label returns the name with its first character upper-cased and nothing
// else changed: "panNo" becomes "PanNo".
func (n FieldName) Label() string {
	r, size := utf8.DecodeRuneInString(string(n))
	if r == utf8.RuneError {
		return string(n)
	}
	return string(unicode.ToUpper(r)) + string(n)[size:]
}

// RequiredMessage is the generic message a live edit sets on an emptied field.
func RequiredMessage(name FieldName) string {
	return name.Label() + " is required"
}

// Fields holds the current value of every form field. Missing keys read as "".
type Fields map[FieldName]string

// Get returns the value of name, or "" if unset.
func (f Fields) Get(name FieldName) string {
	return f[name]
}

// Clone returns an independent copy. Cloning nil yields an empty, non-nil map.
func (f Fields) Clone() Fields {
	out := make(Fields, len(AllFields))
	maps.Copy(out, f)
	return out
}

// Errors maps a field to its current message. A missing key or an empty
// message means the field is valid.
type Errors map[FieldName]string

// Get returns the message for name, or "" when the field is valid.
func (e Errors) Get(name FieldName) string {
	return e[name]
}

// Has reports whether name has a non-empty message.
func (e Errors) Has(name FieldName) bool {
	return e[name] != ""
}

// Valid reports whether no field has a non-empty message.
func (e Errors) Valid() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Count returns the number of fields with a non-empty message.
func (e Errors) Count() int {
	n := 0
	for _, msg := range e {
		if msg != "" {
			n++
		}
	}
	return n
}

// Clone returns an independent copy. Cloning nil yields an empty, non-nil map.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	maps.Copy(out, e)
	return out
}

// Failing returns the fields with a non-empty message, in form order.
// Entries for names outside the form are ignored.
func (e Errors) Failing() []FieldName {
	var out []FieldName
	for _, name := range AllFields {
		if e[name] != "" {
			out = append(out, name)
		}
	}
	return out
}

// ValidationErrors converts the non-empty messages to validator.ValidationErrors in form order.
func (e Errors) ValidationErrors() validator.ValidationErrors {
	var out validator.ValidationErrors
	for _, name := range e.Failing() {
		out.Add(validator.ValidationError{Field: string(name), Message: e[name]})
	}
	return out
}
