package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"contest-api/internal/storage"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	respondWithJSON(w, code, map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// respondWithStoreError maps store sentinels onto the HTTP taxonomy;
// anything else is a downstream failure.
func respondWithStoreError(w http.ResponseWriter, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, storage.ErrInvalidID):
		respondWithError(w, http.StatusBadRequest, "invalid_id", "Invalid document id")
	case errors.Is(err, storage.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not_found", "Document not found")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal_error", fallbackMessage)
	}
}
