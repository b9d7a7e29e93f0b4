package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"joao23.app/social-feed/models"
	"joao23.app/social-feed/store"
)

func TestPostLiked(t *testing.T) {
	notifications := store.NewNotificationStore()
	n := NewNotifier(notifications)

	post := &models.Post{ID: 1, AuthorUsername: "alice", Content: "hello"}
	n.PostLiked(post, "bob")

	items := notifications.List()
	require.Len(t, items, 1)
	assert.Equal(t, models.NotificationLike, items[0].Kind)
	assert.Equal(t, "bob", items[0].Actor)
	assert.Contains(t, items[0].Message, "bob liked your post")
}

func TestSelfActionsAreNotNotified(t *testing.T) {
	notifications := store.NewNotificationStore()
	n := NewNotifier(notifications)

	post := &models.Post{ID: 1, AuthorUsername: "alice", Content: "hello"}
	n.PostLiked(post, "alice")
	n.PostCommented(post, "alice", "replying to myself")

	assert.Empty(t, notifications.List())
}

func TestCommentMessageIsTruncated(t *testing.T) {
	notifications := store.NewNotificationStore()
	n := NewNotifier(notifications)

	post := &models.Post{ID: 1, AuthorUsername: "alice", Content: "hello"}
	long := strings.Repeat("x", 300)
	n.PostCommented(post, "bob", long)

	items := notifications.List()
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Message, "...")
	assert.Less(t, len(items[0].Message), 200)
}

func TestTruncationKeepsRuneBoundaries(t *testing.T) {
	notifications := store.NewNotificationStore()
	n := NewNotifier(notifications)

	post := &models.Post{ID: 1, AuthorUsername: "alice", Content: "olá"}
	long := strings.Repeat("ã", 150)
	n.PostCommented(post, "bob", long)

	items := notifications.List()
	require.Len(t, items, 1)
	assert.True(t, utf8.ValidString(items[0].Message))
	assert.True(t, strings.HasSuffix(items[0].Message, "ã..."))
	assert.Equal(t, 97, strings.Count(items[0].Message, "ã"))
}

func TestFollowed(t *testing.T) {
	notifications := store.NewNotificationStore()
	n := NewNotifier(notifications)

	n.Followed("pedro.alves", "alice")

	items := notifications.List()
	require.Len(t, items, 1)
	assert.Equal(t, models.NotificationFollow, items[0].Kind)
	assert.Equal(t, "pedro.alves started following alice", items[0].Message)
}
