package store

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"joao23.app/social-feed/models"
)

func imageUpload() models.MediaUpload {
	return models.MediaUpload{Data: "data:image/png;base64,AAAA", ContentType: "image/png"}
}

func TestPublishClassifiesMediaKind(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        models.MediaKind
	}{
		{name: "png is image", contentType: "image/png", want: models.MediaImage},
		{name: "jpeg is image", contentType: "image/jpeg", want: models.MediaImage},
		{name: "mp4 is video", contentType: "video/mp4", want: models.MediaVideo},
		{name: "anything else is video", contentType: "application/octet-stream", want: models.MediaVideo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStoryStore()
			story, err := s.Publish(SessionFor("alice"), models.MediaUpload{
				Data:        "data:;base64,AAAA",
				ContentType: tt.contentType,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, story.MediaKind)
			assert.Equal(t, 0, story.ViewCount)
			assert.Equal(t, 0, story.LikeCount)
			assert.Empty(t, story.ViewedBy)
			assert.Empty(t, story.LikedBy)
		})
	}
}

func TestPublishValidation(t *testing.T) {
	s := NewStoryStore()

	var validation *ValidationError

	_, err := s.Publish(SessionFor(""), imageUpload())
	assert.ErrorAs(t, err, &validation)

	_, err = s.Publish(SessionFor("alice"), models.MediaUpload{ContentType: "image/png"})
	assert.ErrorAs(t, err, &validation)
}

func TestPublishPrependsMostRecentFirst(t *testing.T) {
	s := NewStoryStore()
	alice := SessionFor("alice")

	first, err := s.Publish(alice, imageUpload())
	require.NoError(t, err)
	second, err := s.Publish(alice, imageUpload())
	require.NoError(t, err)

	stories := s.Stories()
	require.Len(t, stories, 2)
	assert.Equal(t, second.ID, stories[0].ID)
	assert.Equal(t, first.ID, stories[1].ID)
}

func TestViewIsIdempotentPerViewer(t *testing.T) {
	s := NewStoryStore()
	story, err := s.Publish(SessionFor("alice"), imageUpload())
	require.NoError(t, err)

	_, err = s.View(story.ID, "bob")
	require.NoError(t, err)
	got, err := s.View(story.ID, "bob")
	require.NoError(t, err)

	assert.Equal(t, 1, got.ViewCount)
	assert.Equal(t, []string{"bob"}, got.ViewedBy)

	_, err = s.View(story.ID, "carol")
	require.NoError(t, err)
	got, err = s.View(story.ID, "carol")
	require.NoError(t, err)

	assert.Equal(t, 2, got.ViewCount)
	assert.Len(t, got.ViewedBy, 2)
	assert.Equal(t, got.ViewCount, len(got.ViewedBy), "view count always matches the viewer set")
}

func TestLikeIsIdempotentPerViewer(t *testing.T) {
	s := NewStoryStore()
	story, err := s.Publish(SessionFor("alice"), imageUpload())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := s.Like(story.ID, "bob")
		require.NoError(t, err)
	}

	got, err := s.Like(story.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)
	assert.Equal(t, []string{"bob"}, got.LikedBy)
	assert.Equal(t, got.LikeCount, len(got.LikedBy), "like count always matches the liker set")
}

func TestViewUnknownStory(t *testing.T) {
	s := NewStoryStore()

	var notFound *NotFoundError
	_, err := s.View(7, "bob")
	assert.ErrorAs(t, err, &notFound)
	_, err = s.Like(7, "bob")
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteStoryAuthorization(t *testing.T) {
	tests := []struct {
		name      string
		requester string
		wantErr   bool
	}{
		{name: "author can delete", requester: "alice", wantErr: false},
		{name: "admin can delete", requester: "ogusta", wantErr: false},
		{name: "other member cannot delete", requester: "bob", wantErr: true},
		{name: "guest cannot delete", requester: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStoryStore()
			story, err := s.Publish(SessionFor("alice"), imageUpload())
			require.NoError(t, err)

			err = s.Delete(story.ID, SessionFor(tt.requester))

			if tt.wantErr {
				var authorization *AuthorizationError
				assert.ErrorAs(t, err, &authorization)
				assert.Len(t, s.Stories(), 1)
				return
			}

			require.NoError(t, err)
			assert.Empty(t, s.Stories())
		})
	}
}

func TestStoriesSnapshotIsDetached(t *testing.T) {
	s := NewStoryStore()
	story, err := s.Publish(SessionFor("alice"), imageUpload())
	require.NoError(t, err)

	snapshot := s.Stories()
	viewed, err := s.View(story.ID, "bob")
	require.NoError(t, err)
	_, err = s.Like(story.ID, "bob")
	require.NoError(t, err)

	assert.Equal(t, 0, snapshot[0].ViewCount)
	assert.Empty(t, snapshot[0].ViewedBy)
	assert.Empty(t, snapshot[0].LikedBy)
	assert.Empty(t, viewed.LikedBy, "returned story is detached from later writes")
}

func TestStoriesSnapshotEncodesSafelyDuringWrites(t *testing.T) {
	s := NewStoryStore()
	story, err := s.Publish(SessionFor("alice"), imageUpload())
	require.NoError(t, err)

	viewers := []string{"bob", "carol", "dave", "erin"}
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		viewer := viewers[i]
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := json.Marshal(s.Stories())
				assert.NoError(t, err)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := s.View(story.ID, viewer)
				assert.NoError(t, err)
				_, err = s.Like(story.ID, viewer)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	got, err := s.View(story.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, len(viewers), got.ViewCount)
	assert.Equal(t, len(viewers), got.LikeCount)
}

func TestDeleteUnknownStory(t *testing.T) {
	s := NewStoryStore()

	var notFound *NotFoundError
	assert.ErrorAs(t, s.Delete(3, SessionFor("ogusta")), &notFound)
}
