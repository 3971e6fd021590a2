// Package handler provides type-safe HTTP handlers for the form service.
//
// A HandlerFunc receives a Context and a request struct populated by binders
// and returns a Response. Wrap adapts it to http.HandlerFunc:
//
//	func editField(ctx handler.Context, req editRequest) handler.Response {
//		res, err := form.Edit(ctx, name, req.Value)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(res.Patch)
//	}
//
//	r.Put("/forms/{id}/fields/{field}", handler.Wrap(editField,
//		handler.WithBinders[handler.Context, editRequest](binder.Path(chi.URLParam), binder.JSON()),
//		handler.WithErrorHandler[handler.Context, editRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// JSON renders the envelope {data, meta, error{code, message, details}}.
// Errors are mapped to status codes: HTTPError carries its own code,
// ValidationError and validator.ValidationErrors become 422 with the
// per-field messages in details, anything else is a 500.
//
// Signals answers DataStar requests with a single datastar-patch-signals SSE
// event so the browser store is updated in place. Empty writes a bare status.
//
// # Errors
//
// Binder and render failures go to the ErrorHandler. NewErrorHandler logs the
// failure with the request id and answers with a JSON envelope, or with an
// error signal for DataStar requests.
package handler
