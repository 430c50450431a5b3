package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes v as a JSON response with the given status
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RespondError writes a JSON error body of the form {"message": ...} so
// clients can extract a display message from any failure.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}
