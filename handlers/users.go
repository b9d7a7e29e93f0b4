package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"joao23.app/social-feed/models"
	"joao23.app/social-feed/services"
	"joao23.app/social-feed/store"
)

func SearchUsers(directory *store.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")
		users := directory.Search(term)
		if users == nil {
			users = []models.DirectoryUser{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

func FollowUser(directory *store.Directory, session *models.Session, notifier *services.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := mux.Vars(r)["username"]

		user, err := directory.Follow(session, username)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		go notifier.Followed(session.Username, user.Username)

		writeJSON(w, http.StatusOK, user)
	}
}
