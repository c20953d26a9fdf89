package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the standard error payload. Detail is human-readable and may
// contain multi-line model output.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}

// WriteError writes an error response
func WriteError(w http.ResponseWriter, statusCode int, detail string) error {
	return WriteJSON(w, statusCode, ErrorBody{Detail: detail})
}

// WriteBadRequest writes a 400 Bad Request error
func WriteBadRequest(w http.ResponseWriter, detail string) error {
	return WriteError(w, http.StatusBadRequest, detail)
}

// WriteInternalError writes a 500 Internal Server Error
func WriteInternalError(w http.ResponseWriter, detail string) error {
	return WriteError(w, http.StatusInternalServerError, detail)
}
