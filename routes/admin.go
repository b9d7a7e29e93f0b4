package routes

import (
	"github.com/gorilla/mux"
	"joao23.app/social-feed/handlers"
	"joao23.app/social-feed/models"
	"joao23.app/social-feed/store"
)

func CreateAdminRoutes(moderation *store.ModerationService, session *models.Session, router *mux.Router) *mux.Router {
	router.HandleFunc("/admin/ban", handlers.BanUser(moderation, session)).Methods("POST")
	router.HandleFunc("/admin/posts/{id}", handlers.AdminDeletePost(moderation, session)).Methods("DELETE")
	router.HandleFunc("/admin/stories/{id}", handlers.AdminDeleteStory(moderation, session)).Methods("DELETE")

	return router
}
