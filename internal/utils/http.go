package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-post-hub/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"detail": message} with the given status. For 5xx
// statuses the message is replaced by the generic status text.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError || message == "" {
		message = http.StatusText(statusCode)
	}
	_, _ = WriteJSON(w, models.ErrorResponse{Detail: message}, statusCode)
}
