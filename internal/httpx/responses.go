package httpx

import (
	"encoding/json"
	"log"
	"net/http"

	"bookcatalog/internal/apperr"
)

// MessageResponse is the flat error body the frontend expects.
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteError translates a classified error into a status code and a
// {message} body. Unclassified errors surface as a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	if kind, ok := apperr.KindOf(err); ok {
		WriteMessage(w, statusFor(kind), err.Error())
		return
	}
	log.Printf("unexpected error: %v", err)
	WriteMessage(w, http.StatusInternalServerError, "Internal server error")
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalidInput:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindConfig:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
