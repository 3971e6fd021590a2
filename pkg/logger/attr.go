package logger

import (
	"log/slog"
	"strings"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// FormID records the form session identifier under the key "form_id".
// If id is nil, it returns an empty Attr.
func FormID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("form_id", id)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records a list of form field names under the key "fields".
func Fields(names ...string) slog.Attr {
	return slog.String("fields", strings.Join(names, ","))
}

// State records a form state under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Submittable records the aggregate validity flag.
func Submittable(ok bool) slog.Attr {
	return slog.Bool("submittable", ok)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
