// Package statemachine provides a small, type-safe finite state machine with
// guarded transitions and transition actions.
//
// States and events are any string-based types, so callers declare their own
// constants and get compile-time checking that a form state is never passed
// where an event is expected:
//
//	type State string
//	type Event string
//
//	const (
//	    Editing   State = "editing"
//	    Submitted State = "submitted"
//	    Submit    Event = "submit"
//	)
//
//	m := statemachine.MustNew(Editing,
//	    statemachine.WithTransition(Editing, Submitted, Submit,
//	        statemachine.WithGuard(isValid),
//	    ),
//	)
//	err := m.Fire(ctx, Submit, form)
//
// # Guards and Actions
//
// Several transitions may share the same source state and event; the first one
// whose guards all pass is taken. Actions of the chosen transition run in
// order before the state changes, and an action error aborts the transition.
//
// # Error Handling
//
// Fire distinguishes "no transition defined" from "guards rejected":
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
//
// # Concurrency
//
// Machine guards its state with a RWMutex. Guards and actions run while the
// write lock is held and must not call back into the same machine.
package statemachine
