package registration

// InputKind is the kind of control a presentation layer should render.
type InputKind string

const (
	InputText     InputKind = "text"
	InputEmail    InputKind = "email"
	InputPassword InputKind = "password"
	InputSelect   InputKind = "select"
)

// CountryOptions and CityOptions are the choices offered by the select
// inputs. They are presentation hints; the rule table only requires a value.
var (
	CountryOptions = []string{"India", "USA"}
	CityOptions    = []string{"Mumbai", "New York"}
)

// FieldSpec describes one field for a renderer.
type FieldSpec struct {
	Name     FieldName `json:"name" yaml:"name"`
	Title    string    `json:"title" yaml:"title"`
	Input    InputKind `json:"input" yaml:"input"`
	Required bool      `json:"required" yaml:"required"`
	Options  []string  `json:"options,omitempty" yaml:"options,omitempty"`
}

// Schema returns the field descriptions in form order.
func Schema() []FieldSpec {
	return []FieldSpec{
		{Name: FirstName, Title: "First Name", Input: InputText, Required: true},
		{Name: LastName, Title: "Last Name", Input: InputText, Required: true},
		{Name: Username, Title: "Username", Input: InputText, Required: true},
		{Name: Email, Title: "Email", Input: InputEmail, Required: true},
		{Name: Password, Title: "Password", Input: InputPassword, Required: true},
		{Name: PhoneNo, Title: "Phone No.", Input: InputText, Required: true},
		{Name: Country, Title: "Country", Input: InputSelect, Required: true, Options: append([]string(nil), CountryOptions...)},
		{Name: City, Title: "City", Input: InputSelect, Required: true, Options: append([]string(nil), CityOptions...)},
		{Name: PanNo, Title: "PAN No.", Input: InputText, Required: true},
		{Name: AadharNo, Title: "Aadhar No.", Input: InputText, Required: true},
	}
}
