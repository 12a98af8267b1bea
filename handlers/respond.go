package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func notFound(w http.ResponseWriter) {
	respondMessage(w, http.StatusNotFound, "Note not found")
}

func internalError(w http.ResponseWriter) {
	respondMessage(w, http.StatusInternalServerError, "Internal server error")
}

func validationError(w http.ResponseWriter, errs map[string][]string) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"message": "The given data was invalid.",
		"errors":  errs,
	})
}

// bearerToken extracts the raw token; the auth middleware already
// validated it for guarded routes.
func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
