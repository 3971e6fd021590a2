// Package forms mounts the registration form sessions over HTTP.
//
// Each session is a registration.Form held in a formstore.Store and
// addressed by UUID. Plain clients get the JSON envelope; DataStar clients get
// the same payload as a signals patch, so a live edit merges only the edited
// field's message into the browser's errors signal.
//
//	POST   /                    create a session (201)
//	GET    /{id}                current state, flag, masked values and errors
//	DELETE /{id}                drop the session (204)
//	PUT    /{id}/fields/{field} live edit {"value": "..."}
//	POST   /{id}/validate       full validation
//	POST   /{id}/submit         submit; 422 with field messages when invalid
package forms
