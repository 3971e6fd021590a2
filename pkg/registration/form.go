package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/signupform/pkg/logger"
	"github.com/dmitrymomot/signupform/pkg/statemachine"
)

// State is the form-level lifecycle state.
type State string

const (
	StateEditing   State = "editing"
	StateSubmitted State = "submitted"
)

// Event triggers a form state transition.
type Event string

const EventSubmit Event = "submit"

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used for lifecycle events. Field values are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithClock overrides the time source used to stamp submissions.
func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		if now != nil {
			f.now = now
		}
	}
}

// WithPasswordCost sets the bcrypt cost for the submitted password hash.
// Out-of-range values fall back to bcrypt.DefaultCost.
func WithPasswordCost(cost int) Option {
	return func(f *Form) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			f.passwordCost = cost
		}
	}
}

// Snapshot is a consistent copy of a form's observable state.
type Snapshot struct {
	State       State  `json:"state"`
	Submittable bool   `json:"submittable"`
	Fields      Fields `json:"-"`
	Errors      Errors `json:"errors"`
}

// EditResult is what a live edit produced, taken under the same lock that
// applied it.
type EditResult struct {
	Patch       Errors
	Submittable bool
	State       State
}

// submitAttempt is the data passed through the state machine on submit.
type submitAttempt struct {
	fields Fields
	valid  bool
}

// Form is one editing session of the registration form.
type Form struct {
	mu          sync.Mutex
	fields      Fields
	errors      Errors
	submittable bool
	submission  *Submission
	machine     *statemachine.Machine[State, Event]

	log          *slog.Logger
	now          func() time.Time
	passwordCost int
}

// NewForm starts an empty form in the editing state. The displayed error set
// starts empty; the submittable flag is computed from a full pass over the
// empty fields and is therefore false.
func NewForm(opts ...Option) *Form {
	f := &Form{
		fields:       make(Fields, len(AllFields)),
		errors:       make(Errors),
		log:          logger.Discard(),
		now:          time.Now,
		passwordCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.machine = statemachine.MustNew(StateEditing,
		statemachine.WithTransition(StateEditing, StateSubmitted, EventSubmit,
			statemachine.WithGuard[State, Event](f.guardValid),
			statemachine.WithAction[State, Event](f.recordSubmission),
		),
	)

	_, f.submittable = FullValidate(f.fields)
	return f
}

// Edit applies a live edit: it stores value, patches only that field's
// message via ApplyEdit, then re-runs FullValidate to refresh Submittable.
// The result carries the single-entry patch and the flag computed for this edit.
func (f *Form) Edit(ctx context.Context, name FieldName, value string) (EditResult, error) {
	if !name.Valid() {
		return EditResult{}, NewErrUnknownField(string(name))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.machine.Is(StateSubmitted) {
		return EditResult{}, ErrFormSubmitted
	}

	f.fields, f.errors = ApplyEdit(f.fields, f.errors, name, value)
	_, f.submittable = FullValidate(f.fields)

	f.log.DebugContext(ctx, "field edited",
		logger.Field(string(name)),
		logger.Submittable(f.submittable),
	)

	return EditResult{
		Patch:       EditPatch(name, value),
		Submittable: f.submittable,
		State:       f.machine.Current(),
	}, nil
}

// Validate runs a full pass, replaces the displayed errors with its result
// and returns a copy of them together with the submittable flag.
func (f *Form) Validate(ctx context.Context) (Errors, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errors, f.submittable = FullValidate(f.fields)
	f.log.DebugContext(ctx, "form validated",
		logger.Fields(fieldStrings(f.errors.Failing())...),
		logger.Submittable(f.submittable),
	)
	return f.errors.Clone(), f.submittable
}

// Submit attempts the editing -> submitted transition. A full pass always
// runs first and its result replaces the displayed errors. When it reports
// any error the state is unchanged and the returned error wraps
// ErrFormInvalid together with the failures as validator.ValidationErrors.
func (f *Form) Submit(ctx context.Context) (*Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.machine.Is(StateSubmitted) {
		return nil, ErrFormSubmitted
	}

	errs, ok := FullValidate(f.fields)
	f.errors, f.submittable = errs, ok

	err := f.machine.Fire(ctx, EventSubmit, submitAttempt{fields: f.fields.Clone(), valid: ok})
	switch {
	case err == nil:
		f.log.InfoContext(ctx, "form submitted", logger.State(string(StateSubmitted)))
		return f.submission, nil
	case statemachine.IsTransitionRejectedError(err):
		f.log.DebugContext(ctx, "submit rejected",
			logger.Fields(fieldStrings(errs.Failing())...),
		)
		return nil, errors.Join(ErrFormInvalid, errs.ValidationErrors())
	default:
		f.log.ErrorContext(ctx, "submit failed", logger.Error(err))
		return nil, fmt.Errorf("submit form: %w", err)
	}
}

// Submittable reports whether the current values pass full validation.
func (f *Form) Submittable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submittable
}

func (f *Form) State() State {
	return f.machine.Current()
}

// Fields returns a copy of the current values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields.Clone()
}

// Errors returns a copy of the displayed error set.
func (f *Form) Errors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.Clone()
}

// Submission returns the submission record, or nil while editing.
func (f *Form) Submission() *Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submission
}

// Snapshot returns state, flag, values and displayed errors taken under one lock.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		State:       f.machine.Current(),
		Submittable: f.submittable,
		Fields:      f.fields.Clone(),
		Errors:      f.errors.Clone(),
	}
}

func (f *Form) guardValid(_ context.Context, _ State, _ Event, data any) bool {
	attempt, ok := data.(submitAttempt)
	return ok && attempt.valid
}

// recordSubmission runs with f.mu held by Submit.
func (f *Form) recordSubmission(_ context.Context, _, _ State, _ Event, data any) error {
	attempt, ok := data.(submitAttempt)
	if !ok {
		return errors.New("missing submit data")
	}
	sub, err := newSubmission(attempt.fields, f.now(), f.passwordCost)
	if err != nil {
		return err
	}
	f.submission = sub
	return nil
}

func fieldStrings(names []FieldName) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
