package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path copies path parameters into string fields tagged `path:"name"`.
// The extractor is usually chi.URLParam. Empty parameters leave the field
// unchanged; `path:"-"` and untagged fields are skipped.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidPath)
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}

		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			sf := rt.Field(i)

			name := sf.Tag.Get("path")
			if name == "" || name == "-" || !field.CanSet() {
				continue
			}
			if field.Kind() != reflect.String {
				return fmt.Errorf("%w: field %s must be a string", ErrInvalidPath, sf.Name)
			}

			if value := extractor(r, name); value != "" {
				field.SetString(value)
			}
		}
		return nil
	}
}
