package forms

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/signupform/pkg/registration"
)

// FormView is the payload describing a session.
type FormView struct {
	ID          uuid.UUID           `json:"id"`
	State       registration.State  `json:"state"`
	Submittable bool                `json:"submittable"`
	Fields      registration.Fields `json:"fields,omitempty"`
	Errors      registration.Errors `json:"errors"`
}

func newFormView(id uuid.UUID, snap registration.Snapshot) FormView {
	fields := snap.Fields.Clone()
	if fields.Get(registration.Password) != "" {
		fields[registration.Password] = registration.PasswordMask
	}
	return FormView{
		ID:          id,
		State:       snap.State,
		Submittable: snap.Submittable,
		Fields:      fields,
		Errors:      snap.Errors,
	}
}

// EditView answers a live edit. Errors holds only the edited field.
type EditView struct {
	Errors      registration.Errors `json:"errors"`
	Submittable bool                `json:"submittable"`
	State       registration.State  `json:"state"`
}

// ValidationView answers a full validation pass.
type ValidationView struct {
	Errors      registration.Errors `json:"errors"`
	Submittable bool                `json:"submittable"`
	State       registration.State  `json:"state"`
}

// SubmitView answers a successful submit.
type SubmitView struct {
	ID         uuid.UUID                `json:"id"`
	State      registration.State       `json:"state"`
	Submission *registration.Submission `json:"submission"`
}
