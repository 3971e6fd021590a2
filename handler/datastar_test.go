package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/handler"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header map[string]string
		url    string
		want   bool
	}{
		{"plain request", nil, "/", false},
		{"datastar request header", map[string]string{"Datastar-Request": "true"}, "/", true},
		{"event-stream accept", map[string]string{"Accept": "text/event-stream"}, "/", true},
		{"query param", nil, "/?datastar=%7B%7D", true},
		{"json accept", map[string]string{"Accept": "application/json"}, "/", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(r))
		})
	}
}

func TestSignals(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPut, "/", nil)
	r.Header.Set("Datastar-Request", "true")
	rec := httptest.NewRecorder()

	err := handler.Signals(map[string]any{"submittable": true}).Render(rec, r)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, rec.Body.String(), "datastar-patch-signals")
	assert.Contains(t, rec.Body.String(), `"submittable":true`)
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.Negotiate(plain, map[string]string{"state": "editing"}).Render(rec, plain))
	assert.JSONEq(t, `{"data":{"state":"editing"}}`, rec.Body.String())

	ds := httptest.NewRequest(http.MethodGet, "/", nil)
	ds.Header.Set("Accept", "text/event-stream")
	rec = httptest.NewRecorder()
	require.NoError(t, handler.Negotiate(ds, map[string]string{"state": "editing"}).Render(rec, ds))
	assert.Contains(t, rec.Body.String(), `"state":"editing"`)
}
