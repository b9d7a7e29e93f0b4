package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"joao23.app/social-feed/store"
)

// writeStoreError maps the store error taxonomy onto HTTP status codes.
func writeStoreError(w http.ResponseWriter, err error) {
	var validation *store.ValidationError
	var authorization *store.AuthorizationError
	var notFound *store.NotFoundError

	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Error(), http.StatusBadRequest)
	case errors.As(err, &authorization):
		http.Error(w, authorization.Error(), http.StatusForbidden)
	case errors.As(err, &notFound):
		http.Error(w, notFound.Error(), http.StatusNotFound)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
		log.Println("unexpected store error:", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
