package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"joao23.app/social-feed/models"
	"joao23.app/social-feed/store"
)

func GetProfile(profiles *store.ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := profiles.Get()
		if err != nil {
			http.Error(w, "Failed to read profile", http.StatusInternalServerError)
			log.Println("GetProfile error:", err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

// UpdateProfile persists the profile fields. The session identity was
// resolved at startup and is not re-derived here; a changed username takes
// effect on the next start.
func UpdateProfile(profiles *store.ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p models.Profile
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if p.PhotoURL == "" {
			p.PhotoURL = "/placeholder.svg"
		}

		if err := profiles.Set(p); err != nil {
			http.Error(w, "Failed to save profile", http.StatusInternalServerError)
			log.Println("UpdateProfile error:", err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}

func GetSession(session *models.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session)
	}
}
