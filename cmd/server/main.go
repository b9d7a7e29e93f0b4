package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"joao23.app/social-feed/database"
	"joao23.app/social-feed/routes"
	"joao23.app/social-feed/services"
	"joao23.app/social-feed/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Persistence is best-effort: without a reachable database the profile
	// simply does not survive restarts.
	var kv store.KV
	db, err := database.ConnectDB()
	if err != nil {
		log.Printf("Database unavailable, profile will not persist: %v", err)
		kv = database.NewMemory()
	} else {
		defer db.Close()
		kv, err = database.NewPostgres(db)
		if err != nil {
			log.Fatal("Failed to prepare profile storage:", err)
		}
	}

	profiles := store.NewProfileStore(kv)
	session, err := store.ResolveSession(profiles)
	if err != nil {
		log.Fatal("Failed to resolve session:", err)
	}
	log.Printf("Session resolved | username=%q role=%s verified=%t", session.Username, session.Role, session.Verified)

	content := store.NewContentStore()
	stories := store.NewStoryStore()
	notifications := store.NewNotificationStore()
	directory := store.NewDirectory()
	moderation := store.NewModerationService(content, stories)
	notifier := services.NewNotifier(notifications)

	router := mux.NewRouter()
	routes.CreatePostRoutes(content, session, notifier, router)
	routes.CreateStoryRoutes(stories, session, router)
	routes.CreateUserRoutes(profiles, directory, notifications, session, notifier, router)
	routes.CreateAdminRoutes(moderation, session, router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Listening on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
