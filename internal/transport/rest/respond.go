package rest

import (
	"encoding/json"
	"net/http"
)

// messageResponse is the body of every non-data answer. Err carries the
// underlying error text where clients historically received it.
type messageResponse struct {
	Message string `json:"message"`
	Err     string `json:"err,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeMessageErr(w http.ResponseWriter, status int, message string, err error) {
	resp := messageResponse{Message: message}
	if err != nil {
		resp.Err = err.Error()
	}
	writeJSON(w, status, resp)
}
