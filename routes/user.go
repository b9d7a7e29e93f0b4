package routes

import (
	"github.com/gorilla/mux"
	"joao23.app/social-feed/handlers"
	"joao23.app/social-feed/models"
	"joao23.app/social-feed/services"
	"joao23.app/social-feed/store"
)

func CreateUserRoutes(profiles *store.ProfileStore, directory *store.Directory, notifications *store.NotificationStore, session *models.Session, notifier *services.Notifier, router *mux.Router) *mux.Router {
	router.HandleFunc("/profile", handlers.GetProfile(profiles)).Methods("GET")
	router.HandleFunc("/profile", handlers.UpdateProfile(profiles)).Methods("PUT")
	router.HandleFunc("/session", handlers.GetSession(session)).Methods("GET")

	router.HandleFunc("/users", handlers.SearchUsers(directory)).Methods("GET")
	router.HandleFunc("/users/search", handlers.SearchUsers(directory)).Methods("GET")
	router.HandleFunc("/users/{username}/follow", handlers.FollowUser(directory, session, notifier)).Methods("POST")

	router.HandleFunc("/notifications", handlers.GetNotifications(notifications)).Methods("GET")

	return router
}
