package handlers

import (
	"net/http"

	"joao23.app/social-feed/models"
	"joao23.app/social-feed/store"
)

// GetNotifications lists the notification feed, optionally filtered to one
// of the three kinds via ?kind=like|comment|follow.
func GetNotifications(notifications *store.NotificationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := models.NotificationKind(r.URL.Query().Get("kind"))

		var items []*models.Notification
		switch {
		case kind == "":
			items = notifications.List()
		case kind.Valid():
			items = notifications.ListKind(kind)
		default:
			http.Error(w, "Unknown notification kind", http.StatusBadRequest)
			return
		}
		if items == nil {
			items = []*models.Notification{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}
