package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"joao23.app/social-feed/models"
	"joao23.app/social-feed/store"
)

func BanUser(moderation *store.ModerationService, session *models.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		removed, err := moderation.BanUser(session, req.Username)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		log.Printf("BanUser: banned %q, removed %d posts", req.Username, removed)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"banned":        req.Username,
			"posts_removed": removed,
		})
	}
}

func AdminDeletePost(moderation *store.ModerationService, session *models.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			http.Error(w, "Invalid post ID", http.StatusBadRequest)
			return
		}

		if err := moderation.DeletePost(session, postID); err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Post deleted successfully",
		})
	}
}

func AdminDeleteStory(moderation *store.ModerationService, session *models.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			http.Error(w, "Invalid story ID", http.StatusBadRequest)
			return
		}

		if err := moderation.DeleteStory(session, storyID); err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Story deleted successfully",
		})
	}
}
