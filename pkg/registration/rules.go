package registration

import (
	"github.com/dmitrymomot/signupform/pkg/validator"
)

// Messages reported by FullValidate.
const (
	MsgFirstNameRequired = "First Name is required"
	MsgLastNameRequired  = "Last Name is required"
	MsgUsernameRequired  = "Username is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Email is invalid"
	MsgPasswordRequired  = "Password is required"
	MsgPasswordInvalid   = "Password must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, and one number"
	MsgPhoneNoRequired   = "Phone number is required"
	MsgPhoneNoInvalid    = "Phone number must include country code and be in the format +1234567890, with exactly 10 digits after the country code"
	MsgCountryRequired   = "Country is required"
	MsgCityRequired      = "City is required"
	MsgPanNoRequired     = "Pan No. is required"
	MsgAadharNoRequired  = "Aadhar No. is required"
	MsgAadharNoInvalid   = "Aadhar No. must be exactly 12 digits"
)

const (
	passwordMinLength = 8
	aadharDigits      = 12
)

// ruleSet builds the ordered checks for one field value. Only the first
// failing rule is reported.
type ruleSet func(value string) []validator.Rule

func required(name FieldName, msg string) ruleSet {
	return func(value string) []validator.Rule {
		return []validator.Rule{
			validator.Required(string(name), value).WithMessage(msg),
		}
	}
}

// rules is the fixed rule table. No rule reads another field.
var rules = map[FieldName]ruleSet{
	FirstName: required(FirstName, MsgFirstNameRequired),
	LastName:  required(LastName, MsgLastNameRequired),
	Username:  required(Username, MsgUsernameRequired),
	Email: func(value string) []validator.Rule {
		return []validator.Rule{
			validator.Required(string(Email), value).WithMessage(MsgEmailRequired),
			validator.LooseEmail(string(Email), value).WithMessage(MsgEmailInvalid),
		}
	},
	Password: func(value string) []validator.Rule {
		return []validator.Rule{
			validator.Required(string(Password), value).WithMessage(MsgPasswordRequired),
			validator.AlphaNumericPassword(string(Password), value, passwordMinLength).WithMessage(MsgPasswordInvalid),
		}
	},
	PhoneNo: func(value string) []validator.Rule {
		return []validator.Rule{
			validator.Required(string(PhoneNo), value).WithMessage(MsgPhoneNoRequired),
			validator.PhoneWithCountryCode(string(PhoneNo), value).WithMessage(MsgPhoneNoInvalid),
		}
	},
	Country: required(Country, MsgCountryRequired),
	City:    required(City, MsgCityRequired),
	PanNo:   required(PanNo, MsgPanNoRequired),
	AadharNo: func(value string) []validator.Rule {
		return []validator.Rule{
			validator.Required(string(AadharNo), value).WithMessage(MsgAadharNoRequired),
			validator.Digits(string(AadharNo), value, aadharDigits).WithMessage(MsgAadharNoInvalid),
		}
	},
}

// ValidateField runs the full rule table for a single field and returns its
// message, or "" when the value is valid. Unknown fields are always valid.
func ValidateField(name FieldName, value string) string {
	rs, ok := rules[name]
	if !ok {
		return ""
	}
	if err := validator.First(rs(value)...); err != nil {
		return err.Message
	}
	return ""
}
