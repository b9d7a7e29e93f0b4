package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"joao23.app/social-feed/models"
	"joao23.app/social-feed/store"
)

func GetStories(stories *store.StoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stories.Stories())
	}
}

// PublishStory accepts the already-decoded media payload. Decoding the
// original file into a data URI happens on the client before this request
// is ever made, so the store never observes a partial payload.
func PublishStory(stories *store.StoryStore, session *models.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var upload models.MediaUpload
		if err := json.NewDecoder(r.Body).Decode(&upload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		story, err := stories.Publish(session, upload)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, story)
	}
}

func ViewStory(stories *store.StoryStore, session *models.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID, err := storyIDVar(r)
		if err != nil {
			http.Error(w, "Invalid story ID", http.StatusBadRequest)
			return
		}

		story, err := stories.View(storyID, session.Username)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, story)
	}
}

func LikeStory(stories *store.StoryStore, session *models.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID, err := storyIDVar(r)
		if err != nil {
			http.Error(w, "Invalid story ID", http.StatusBadRequest)
			return
		}

		story, err := stories.Like(storyID, session.Username)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, story)
	}
}

func DeleteStory(stories *store.StoryStore, session *models.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID, err := storyIDVar(r)
		if err != nil {
			http.Error(w, "Invalid story ID", http.StatusBadRequest)
			return
		}

		if err := stories.Delete(storyID, session); err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Story deleted successfully",
		})
	}
}

func storyIDVar(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["storyId"], 10, 64)
}
