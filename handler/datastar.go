package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	DataStarAcceptHeader  = "text/event-stream"
	DataStarRequestHeader = "Datastar-Request"
	DataStarQueryParam    = "datastar"
)

// IsDataStar reports whether r was sent by a DataStar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

type signalsResponse struct {
	signals any
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	data, err := json.Marshal(s.signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}
	sse := datastar.NewSSE(w, r)
	return sse.PatchSignals(data)
}

// Signals patches the DataStar client store with signals, which must marshal
// to a JSON object.
func Signals(signals any) Response {
	return signalsResponse{signals: signals}
}

// Negotiate returns signals for DataStar requests and the JSON envelope otherwise.
func Negotiate(r *http.Request, data any, opts ...JSONOption) Response {
	if IsDataStar(r) {
		return Signals(data)
	}
	return JSON(data, opts...)
}
