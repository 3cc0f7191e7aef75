package httpx

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the envelope of every error reply.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries either a single message or a list of messages.
type ErrorBody struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response failed: error=%v", err)
	}
}

// Error writes an error envelope. message is a string or a []string.
func Error(w http.ResponseWriter, statusCode int, message any) {
	JSON(w, statusCode, ErrorResponse{
		Error: ErrorBody{
			Message: message,
			Status:  statusCode,
		},
	})
}

// NotFoundHandler answers unknown routes.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Error(w, http.StatusNotFound, "Not Found")
	})
}
