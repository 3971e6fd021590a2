package forms

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/signupform/binder"
	"github.com/dmitrymomot/signupform/handler"
	"github.com/dmitrymomot/signupform/pkg/formstore"
	"github.com/dmitrymomot/signupform/pkg/logger"
	"github.com/dmitrymomot/signupform/pkg/registration"
)

type Service struct {
	store        *formstore.Store
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewService(store *formstore.Store, log *slog.Logger, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	if log == nil {
		log = logger.Discard()
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log)
	}
	return &Service{
		store:        store,
		log:          log.With(logger.Component("forms")),
		errorHandler: errorHandler,
	}
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(s.create,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", handler.Wrap(s.show,
			handler.WithBinders[handler.Context, SessionRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, SessionRequest](s.errorHandler),
		))
		r.Delete("/", handler.Wrap(s.delete,
			handler.WithBinders[handler.Context, SessionRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, SessionRequest](s.errorHandler),
		))
		r.Put("/fields/{field}", handler.Wrap(s.edit,
			handler.WithBinders[handler.Context, EditRequest](
				binder.Path(chi.URLParam),
				binder.Signals(), // DataStar clients
				binder.JSON(),    // everyone else
			),
			handler.WithErrorHandler[handler.Context, EditRequest](s.errorHandler),
		))
		r.Post("/validate", handler.Wrap(s.validate,
			handler.WithBinders[handler.Context, SessionRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, SessionRequest](s.errorHandler),
		))
		r.Post("/submit", handler.Wrap(s.submit,
			handler.WithBinders[handler.Context, SessionRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, SessionRequest](s.errorHandler),
		))
	})

	return r
}

// SessionRequest addresses one form session.
type SessionRequest struct {
	ID string `path:"id" json:"-"`
}

// EditRequest carries a live edit of one field.
type EditRequest struct {
	ID    string `path:"id" json:"-"`
	Field string `path:"field" json:"-"`
	Value string `json:"value"`
}

func (s *Service) create(ctx handler.Context, _ struct{}) handler.Response {
	id, form := s.store.Create()
	s.log.InfoContext(ctx, "form session created", logger.FormID(id))

	return handler.Negotiate(ctx.Request(), newFormView(id, form.Snapshot()),
		handler.WithJSONStatus(http.StatusCreated),
	)
}

func (s *Service) show(ctx handler.Context, req SessionRequest) handler.Response {
	id, form, err := s.lookup(req.ID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return handler.Negotiate(ctx.Request(), newFormView(id, form.Snapshot()))
}

func (s *Service) delete(ctx handler.Context, req SessionRequest) handler.Response {
	id, err := uuid.Parse(req.ID)
	if err != nil || !s.store.Delete(id) {
		return s.fail(ctx, handler.ErrNotFound)
	}
	return handler.Empty()
}

func (s *Service) edit(ctx handler.Context, req EditRequest) handler.Response {
	_, form, err := s.lookup(req.ID)
	if err != nil {
		return s.fail(ctx, err)
	}

	name, err := registration.ParseFieldName(req.Field)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := form.Edit(ctx, name, req.Value)
	if err != nil {
		return s.fail(ctx, err)
	}

	return handler.Negotiate(ctx.Request(), EditView{
		Errors:      res.Patch,
		Submittable: res.Submittable,
		State:       res.State,
	})
}

func (s *Service) validate(ctx handler.Context, req SessionRequest) handler.Response {
	_, form, err := s.lookup(req.ID)
	if err != nil {
		return s.fail(ctx, err)
	}

	errs, ok := form.Validate(ctx)
	return handler.Negotiate(ctx.Request(), ValidationView{
		Errors:      errs,
		Submittable: ok,
		State:       form.State(),
	})
}

func (s *Service) submit(ctx handler.Context, req SessionRequest) handler.Response {
	id, form, err := s.lookup(req.ID)
	if err != nil {
		return s.fail(ctx, err)
	}

	sub, err := form.Submit(ctx)
	switch {
	case err == nil:
		s.log.InfoContext(ctx, "form session submitted", logger.FormID(id))
		return handler.Negotiate(ctx.Request(), SubmitView{
			ID:         id,
			State:      form.State(),
			Submission: sub,
		})
	case errors.Is(err, registration.ErrFormInvalid) && handler.IsDataStar(ctx.Request()):
		snap := form.Snapshot()
		return handler.Signals(ValidationView{
			Errors:      snap.Errors,
			Submittable: snap.Submittable,
			State:       snap.State,
		})
	case errors.Is(err, registration.ErrFormInvalid):
		return handler.JSONError(err, handler.WithJSONMeta(map[string]any{
			"state":       form.State(),
			"submittable": false,
		}))
	default:
		return s.fail(ctx, err)
	}
}

func (s *Service) lookup(raw string) (uuid.UUID, *registration.Form, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, nil, handler.ErrNotFound
	}
	form, err := s.store.Get(id)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, form, nil
}

// fail maps domain errors to HTTP errors and hands them to the error handler.
func (s *Service) fail(ctx handler.Context, err error) handler.Response {
	switch {
	case errors.Is(err, formstore.ErrNotFound):
		err = handler.ErrNotFound
	case errors.Is(err, registration.ErrUnknownField):
		err = handler.ErrBadRequest
	case errors.Is(err, registration.ErrFormSubmitted):
		err = handler.ErrConflict
	}
	return errorResponse{err: err, handle: s.errorHandler, ctx: ctx}
}

type errorResponse struct {
	err    error
	handle handler.ErrorHandler[handler.Context]
	ctx    handler.Context
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	e.handle(e.ctx, e.err)
	return nil
}
