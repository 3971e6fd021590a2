package handler

import (
	"fmt"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

const YAMLContentType = "application/yaml"

type yamlResponse struct {
	status int
	v      any
}

func (y yamlResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	data, err := yaml.Marshal(y.v)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	w.Header().Set("Content-Type", YAMLContentType+"; charset=utf-8")
	w.WriteHeader(y.status)
	_, err = w.Write(data)
	return err
}

// YAML renders v as a bare YAML document with status 200.
func YAML(v any) Response {
	return yamlResponse{status: http.StatusOK, v: v}
}

// WantsYAML reports whether the client asked for YAML via Accept.
func WantsYAML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, YAMLContentType) || strings.Contains(accept, "text/yaml")
}
