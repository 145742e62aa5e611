package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/siteconfig/pkg/binder"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// bindError answers a request whose body could not be bound.
func bindError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrBodyTooLarge):
		status = http.StatusRequestEntityTooLarge
	}
	writeError(w, status, err)
}
