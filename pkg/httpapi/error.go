package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorEnvelope is the JSON body of every error the mock server writes itself.
// Resource misses are passed through unchanged and never use it.
type ErrorEnvelope struct {
	Status  int               `json:"status"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Status:  status,
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// UpstreamStatus picks the gateway status for a failed upstream fetch.
func UpstreamStatus(err error) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT"
	case errors.Is(err, context.Canceled):
		return 499, "CLIENT_CLOSED_REQUEST"
	default:
		return http.StatusBadGateway, "UPSTREAM_ERROR"
	}
}
