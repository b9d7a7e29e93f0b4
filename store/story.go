package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"joao23.app/social-feed/models"
)

// StoryStore owns the ephemeral stories, most recent first. Views and
// likes are tracked per viewer so that each username counts at most once;
// the invariants ViewCount == len(ViewedBy) and LikeCount == len(LikedBy)
// hold at all times.
type StoryStore struct {
	mu      sync.Mutex
	stories []*models.Story
	nextID  int64
}

func NewStoryStore() *StoryStore {
	return &StoryStore{nextID: 1}
}

// Publish inserts a new story built from an already-decoded media payload.
// The payload's declared content type decides the kind: image/* is an
// image, everything else is treated as video.
func (s *StoryStore) Publish(author *models.Session, upload models.MediaUpload) (*models.Story, error) {
	if author == nil || author.Username == "" {
		return nil, &ValidationError{Reason: "a profile is required before publishing a story"}
	}
	if upload.Data == "" {
		return nil, &ValidationError{Reason: "story media cannot be empty"}
	}

	kind := models.MediaVideo
	if strings.HasPrefix(upload.ContentType, "image/") {
		kind = models.MediaImage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	story := &models.Story{
		ID:               s.nextID,
		AuthorUsername:   author.Username,
		MediaRef:         upload.Data,
		MediaKind:        kind,
		ViewCount:        0,
		LikeCount:        0,
		ViewedBy:         []string{},
		LikedBy:          []string{},
		VerifiedSnapshot: author.Verified,
		CreatedAt:        time.Now().UTC(),
	}
	s.nextID++

	s.stories = append([]*models.Story{story}, s.stories...)
	return story.Clone(), nil
}

// View records a view by the given username. The first view increments the
// view count; repeats are no-ops.
func (s *StoryStore) View(storyID int64, viewer string) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story := s.find(storyID)
	if story == nil {
		return nil, &NotFoundError{Kind: "story", ID: strconv.FormatInt(storyID, 10)}
	}
	if !story.ViewedByUser(viewer) {
		story.ViewedBy = append(story.ViewedBy, viewer)
		story.ViewCount++
	}
	return story.Clone(), nil
}

// Like records a like by the given username, idempotently. The store
// enforces this regardless of whether the caller already disabled the
// action for users present in LikedBy.
func (s *StoryStore) Like(storyID int64, viewer string) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story := s.find(storyID)
	if story == nil {
		return nil, &NotFoundError{Kind: "story", ID: strconv.FormatInt(storyID, 10)}
	}
	if !story.LikedByUser(viewer) {
		story.LikedBy = append(story.LikedBy, viewer)
		story.LikeCount++
	}
	return story.Clone(), nil
}

// Delete removes a story. Only the story's author or an admin may delete
// it; this is enforced here, not left to the presentation layer.
func (s *StoryStore) Delete(storyID int64, requester *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, story := range s.stories {
		if story.ID != storyID {
			continue
		}
		if requester == nil || (!requester.IsAdmin && requester.Username != story.AuthorUsername) {
			return &AuthorizationError{Reason: "only the author or an admin can delete a story"}
		}
		s.stories = append(s.stories[:i], s.stories[i+1:]...)
		return nil
	}
	return &NotFoundError{Kind: "story", ID: strconv.FormatInt(storyID, 10)}
}

// Stories returns a snapshot, most recent first. Every entry is a
// detached copy, safe to encode while other requests keep mutating the
// store.
func (s *StoryStore) Stories() []*models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Story, len(s.stories))
	for i, st := range s.stories {
		out[i] = st.Clone()
	}
	return out
}

func (s *StoryStore) find(storyID int64) *models.Story {
	for _, st := range s.stories {
		if st.ID == storyID {
			return st
		}
	}
	return nil
}
