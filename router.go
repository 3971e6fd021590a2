package signupform

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/signupform/handler"
	"github.com/dmitrymomot/signupform/modules/forms"
	"github.com/dmitrymomot/signupform/pkg/formstore"
	"github.com/dmitrymomot/signupform/pkg/httpserver"
	"github.com/dmitrymomot/signupform/pkg/logger"
	"github.com/dmitrymomot/signupform/pkg/registration"
	"github.com/dmitrymomot/signupform/pkg/requestid"
)

// RouterOptions configures Router. Store is required.
type RouterOptions struct {
	Store  *formstore.Store
	Logger *slog.Logger
}

// OptionsView lists the choices offered by the select inputs.
type OptionsView struct {
	Countries []string `json:"countries"`
	Cities    []string `json:"cities"`
}

// Router builds the service's HTTP handler.
func Router(opts RouterOptions) chi.Router {
	if opts.Store == nil {
		panic("signupform: RouterOptions.Store is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	errorHandler := handler.NewErrorHandler(log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	r.Get("/options", handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			return handler.Negotiate(ctx.Request(), OptionsView{
				Countries: append([]string(nil), registration.CountryOptions...),
				Cities:    append([]string(nil), registration.CityOptions...),
			})
		},
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))

	r.Get("/schema", handler.Wrap(
		func(ctx handler.Context, _ struct{}) handler.Response {
			if handler.WantsYAML(ctx.Request()) {
				return handler.YAML(registration.Schema())
			}
			return handler.JSON(registration.Schema())
		},
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))

	r.Mount("/forms", forms.NewService(opts.Store, log, errorHandler).Handle())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})

	return r
}
