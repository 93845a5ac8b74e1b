package middleware

import (
	"encoding/json"
	"net/http"
)

// writeMessage answers with a JSON body of the form {"message": msg}.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
