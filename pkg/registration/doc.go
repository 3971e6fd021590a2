// Package registration validates the ten-field registration form and tracks a
// form session from editing to submission.
//
// Two pure functions make up the validation contract:
//
//	errs, ok := registration.FullValidate(fields)
//	fields, errs = registration.ApplyEdit(fields, errs, registration.Email, "a@b.com")
//
// FullValidate runs every field's rule table from scratch and returns the
// complete error set with the submittable flag. ApplyEdit is the cheap check
// run on each keystroke: it stores the new value and sets or clears only that
// field's "required" message, without running any format rule. The two paths
// word their required messages differently on purpose ("Pan No. is required"
// from the full pass, "PanNo is required" from a live edit); callers that
// display both must not assume they match.
//
// # Form sessions
//
// Form wraps the two functions with the session state a form needs:
//
//	f := registration.NewForm()
//	res, _ := f.Edit(ctx, registration.FirstName, "Ada")
//	if res.Submittable {
//	    sub, err := f.Submit(ctx)
//	}
//
// Every Edit re-runs FullValidate so Submittable always reflects the current
// values, never the possibly stale per-field messages. Submit moves the form
// from editing to submitted only when the full pass reports no errors; on an
// invalid form it leaves the state alone, replaces the displayed errors with
// the full set and returns ErrFormInvalid. Submitted is terminal.
//
// Form is safe for concurrent use; edits are applied in the order the calls
// acquire the form.
package registration
