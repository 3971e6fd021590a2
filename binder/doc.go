// Package binder decodes HTTP requests into typed request structs for
// handler.Wrap.
//
// JSON decodes a strict application/json body. Path copies router path
// parameters into string fields tagged `path:"name"`. Signals decodes the
// signal payload sent by DataStar clients. A binder that does not apply to
// the current request returns ErrBinderNotApplicable and is skipped.
//
//	type editRequest struct {
//		ID    string `path:"id" json:"-"`
//		Field string `path:"field" json:"-"`
//		Value string `json:"value"`
//	}
//
//	r.Put("/forms/{id}/fields/{field}", handler.Wrap(edit,
//		handler.WithBinders[handler.Context, editRequest](
//			binder.Path(chi.URLParam), binder.Signals(), binder.JSON(),
//		),
//	))
package binder
