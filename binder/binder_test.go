package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/binder"
)

type editRequest struct {
	ID    string `path:"id" json:"-"`
	Field string `path:"field" json:"-"`
	Value string `json:"value"`
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/forms/1/fields/email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		var req editRequest
		require.NoError(t, bind(jsonRequest(`{"value":"a@b.com"}`), &req))
		assert.Equal(t, "a@b.com", req.Value)
	})

	t.Run("empty string is a value", func(t *testing.T) {
		t.Parallel()
		req := editRequest{Value: "old"}
		require.NoError(t, bind(jsonRequest(`{"value":""}`), &req))
		assert.Equal(t, "", req.Value)
	})

	testCases := []struct {
		name    string
		body    string
		ctype   string
		wantErr error
	}{
		{"missing content type", `{"value":"x"}`, "", binder.ErrMissingContentType},
		{"wrong content type", `value=x`, "application/x-www-form-urlencoded", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrInvalidJSON},
		{"malformed", `{"value":`, "application/json", binder.ErrInvalidJSON},
		{"unknown field", `{"value":"x","extra":1}`, "application/json", binder.ErrInvalidJSON},
		{"wrong type", `{"value":42}`, "application/json", binder.ErrInvalidJSON},
		{"trailing data", `{"value":"x"}{}`, "application/json", binder.ErrInvalidJSON},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tc.body))
			if tc.ctype != "" {
				r.Header.Set("Content-Type", tc.ctype)
			}
			var req editRequest
			assert.ErrorIs(t, bind(r, &req), tc.wantErr)
		})
	}

	t.Run("skips datastar requests", func(t *testing.T) {
		t.Parallel()
		r := jsonRequest(`{"value":"x"}`)
		r.Header.Set("Datastar-Request", "true")
		var req editRequest
		assert.ErrorIs(t, bind(r, &req), binder.ErrBinderNotApplicable)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	params := map[string]string{"id": "abc", "field": "email"}
	extractor := func(_ *http.Request, name string) string { return params[name] }
	bind := binder.Path(extractor)

	var req editRequest
	require.NoError(t, bind(httptest.NewRequest(http.MethodGet, "/", nil), &req))
	assert.Equal(t, "abc", req.ID)
	assert.Equal(t, "email", req.Field)

	assert.ErrorIs(t, bind(httptest.NewRequest(http.MethodGet, "/", nil), req), binder.ErrInvalidPath)

	var notStruct string
	assert.ErrorIs(t, bind(httptest.NewRequest(http.MethodGet, "/", nil), &notStruct), binder.ErrInvalidPath)

	var badType struct {
		ID int `path:"id"`
	}
	assert.ErrorIs(t, bind(httptest.NewRequest(http.MethodGet, "/", nil), &badType), binder.ErrInvalidPath)

	assert.ErrorIs(t, binder.Path(nil)(httptest.NewRequest(http.MethodGet, "/", nil), &req), binder.ErrInvalidPath)
}

func TestSignals(t *testing.T) {
	t.Parallel()

	bind := binder.Signals()

	t.Run("body signals", func(t *testing.T) {
		t.Parallel()
		r := jsonRequest(`{"value":"Mumbai"}`)
		r.Header.Set("Datastar-Request", "true")

		var req editRequest
		require.NoError(t, bind(r, &req))
		assert.Equal(t, "Mumbai", req.Value)
	})

	t.Run("query signals on GET", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"value":"India"}`}}
		r := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)

		var req editRequest
		require.NoError(t, bind(r, &req))
		assert.Equal(t, "India", req.Value)
	})

	t.Run("skips plain requests", func(t *testing.T) {
		t.Parallel()
		var req editRequest
		assert.ErrorIs(t, bind(jsonRequest(`{"value":"x"}`), &req), binder.ErrBinderNotApplicable)
	})
}
