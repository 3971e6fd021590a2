package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/signupform/binder"
	"github.com/dmitrymomot/signupform/pkg/logger"
)

// requestError is the signal DataStar clients receive when a request fails.
type requestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// classify maps binder failures to client errors and leaves other errors as they are.
func classify(err error) error {
	switch {
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidPath), errors.Is(err, binder.ErrInvalidSignals):
		return ErrBadRequest
	}
	return err
}

func logLevel(status int) slog.Level {
	if status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler logs err and renders it as a JSON envelope, or as a
// requestError signal for DataStar requests.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		status := http.StatusInternalServerError
		detail := errorToDetail(classify(err), &status)

		log.LogAttrs(r.Context(), logLevel(status), "request error",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		var resp Response
		if IsDataStar(r) {
			resp = Signals(map[string]any{
				"requestError": requestError{Code: detail.Code, Message: detail.Message},
			})
		} else {
			resp = jsonResponse{status: status, body: JSONResponse{Error: detail}}
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
