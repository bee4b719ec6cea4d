package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body. Fields is only populated for
// validation failures; raw storage errors never appear here.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

func respondValidationError(w http.ResponseWriter, message string, fields []string) {
	respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Fields: fields})
}
