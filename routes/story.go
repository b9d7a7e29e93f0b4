package routes

import (
	"github.com/gorilla/mux"
	"joao23.app/social-feed/handlers"
	"joao23.app/social-feed/models"
	"joao23.app/social-feed/store"
)

func CreateStoryRoutes(stories *store.StoryStore, session *models.Session, router *mux.Router) *mux.Router {
	router.HandleFunc("/stories", handlers.GetStories(stories)).Methods("GET")
	router.HandleFunc("/stories", handlers.PublishStory(stories, session)).Methods("POST")
	router.HandleFunc("/stories/{storyId}/view", handlers.ViewStory(stories, session)).Methods("POST")
	router.HandleFunc("/stories/{storyId}/like", handlers.LikeStory(stories, session)).Methods("POST")
	router.HandleFunc("/stories/{storyId}", handlers.DeleteStory(stories, session)).Methods("DELETE")

	return router
}
