package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"joao23.app/social-feed/models"
	"joao23.app/social-feed/services"
	"joao23.app/social-feed/store"
)

func GetFeed(content *store.ContentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.Posts())
	}
}

func CreatePost(content *store.ContentStore, session *models.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		post, err := content.CreatePost(session, req.Content)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, post)
	}
}

func LikePost(content *store.ContentStore, session *models.Session, notifier *services.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := postIDVar(r)
		if err != nil {
			http.Error(w, "Invalid post ID", http.StatusBadRequest)
			return
		}

		post, err := content.Like(postID)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		go notifier.PostLiked(post, session.Username)

		writeJSON(w, http.StatusOK, post)
	}
}

func CreateComment(content *store.ContentStore, session *models.Session, notifier *services.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := postIDVar(r)
		if err != nil {
			http.Error(w, "Invalid post ID", http.StatusBadRequest)
			return
		}

		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		comment, err := content.AddComment(postID, session, req.Content)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		if post, err := content.Get(postID); err == nil {
			go notifier.PostCommented(post, session.Username, comment.Content)
		}

		writeJSON(w, http.StatusCreated, comment)
	}
}

func GetPostComments(content *store.ContentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := postIDVar(r)
		if err != nil {
			http.Error(w, "Invalid post ID", http.StatusBadRequest)
			return
		}

		post, err := content.Get(postID)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, post.Comments)
	}
}

func postIDVar(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["postId"], 10, 64)
}
