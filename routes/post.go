package routes

import (
	"github.com/gorilla/mux"
	"joao23.app/social-feed/handlers"
	"joao23.app/social-feed/models"
	"joao23.app/social-feed/services"
	"joao23.app/social-feed/store"
)

func CreatePostRoutes(content *store.ContentStore, session *models.Session, notifier *services.Notifier, router *mux.Router) *mux.Router {
	router.HandleFunc("/posts", handlers.GetFeed(content)).Methods("GET")
	router.HandleFunc("/posts", handlers.CreatePost(content, session)).Methods("POST")
	router.HandleFunc("/posts/{postId}/like", handlers.LikePost(content, session, notifier)).Methods("POST")
	router.HandleFunc("/posts/{postId}/comments", handlers.CreateComment(content, session, notifier)).Methods("POST")
	router.HandleFunc("/posts/{postId}/comments", handlers.GetPostComments(content)).Methods("GET")

	return router
}
