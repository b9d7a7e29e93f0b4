package services

import (
	"fmt"
	"log"

	"joao23.app/social-feed/models"
	"joao23.app/social-feed/store"
)

// Notifier turns store mutations into entries in the in-app notification
// feed. Delivery is in-process; there is no push transport.
type Notifier struct {
	notifications *store.NotificationStore
}

func NewNotifier(notifications *store.NotificationStore) *Notifier {
	return &Notifier{notifications: notifications}
}

// PostLiked records a like notification for the post owner. Liking your
// own post produces nothing.
func (n *Notifier) PostLiked(post *models.Post, liker string) {
	if post.AuthorUsername == liker {
		return
	}

	message := fmt.Sprintf("%s liked your post: %s", liker, truncate(post.Content, 100))
	n.notifications.Add(models.NotificationLike, liker, message)
	log.Printf("[NOTIFY] like | post=%d actor=%s", post.ID, liker)
}

// PostCommented records a comment notification for the post owner.
func (n *Notifier) PostCommented(post *models.Post, commenter, commentText string) {
	if post.AuthorUsername == commenter {
		return
	}

	message := fmt.Sprintf("%s commented on your post: %s", commenter, truncate(commentText, 100))
	n.notifications.Add(models.NotificationComment, commenter, message)
	log.Printf("[NOTIFY] comment | post=%d actor=%s", post.ID, commenter)
}

// Followed records a follow notification.
func (n *Notifier) Followed(follower, followed string) {
	message := fmt.Sprintf("%s started following %s", follower, followed)
	n.notifications.Add(models.NotificationFollow, follower, message)
	log.Printf("[NOTIFY] follow | actor=%s target=%s", follower, followed)
}

// truncate shortens s to at most max runes, never splitting a multi-byte
// sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
