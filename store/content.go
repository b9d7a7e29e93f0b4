package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"joao23.app/social-feed/models"
)

// ContentStore owns the in-memory feed: an ordered slice of posts, most
// recent first, with comments nested under their post. Ids increase
// monotonically, so relative id order encodes creation order.
type ContentStore struct {
	mu     sync.Mutex
	posts  []*models.Post
	nextID int64
}

func NewContentStore() *ContentStore {
	return &ContentStore{nextID: 1}
}

// CreatePost validates and prepends a new post authored by the session
// identity. The session's verified flag is snapshotted onto the post and
// never re-derived afterwards.
func (s *ContentStore) CreatePost(author *models.Session, text string) (*models.Post, error) {
	if author == nil || author.Username == "" {
		return nil, &ValidationError{Reason: "a profile is required before posting"}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Reason: "post content cannot be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := &models.Post{
		ID:               s.nextID,
		AuthorUsername:   author.Username,
		Content:          text,
		LikeCount:        0,
		Comments:         []models.Comment{},
		VerifiedSnapshot: author.Verified,
		CreatedAt:        time.Now().UTC(),
	}
	s.nextID++

	s.posts = append([]*models.Post{post}, s.posts...)
	return post.Clone(), nil
}

// Like increments the post's like count by one. Repeated likes from the
// same actor are not deduplicated; posts carry no per-actor membership,
// unlike stories.
func (s *ContentStore) Like(postID int64) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.find(postID)
	if post == nil {
		return nil, &NotFoundError{Kind: "post", ID: strconv.FormatInt(postID, 10)}
	}
	post.LikeCount++
	return post.Clone(), nil
}

// AddComment appends a comment to the addressed post. Comments keep append
// order, which is chronological.
func (s *ContentStore) AddComment(postID int64, author *models.Session, text string) (*models.Comment, error) {
	if author == nil || author.Username == "" {
		return nil, &ValidationError{Reason: "a profile is required before commenting"}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Reason: "comment content cannot be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.find(postID)
	if post == nil {
		return nil, &NotFoundError{Kind: "post", ID: strconv.FormatInt(postID, 10)}
	}

	comment := models.Comment{
		ID:               s.nextID,
		PostID:           post.ID,
		AuthorUsername:   author.Username,
		Content:          text,
		LikeCount:        0,
		VerifiedSnapshot: author.Verified,
		CreatedAt:        time.Now().UTC(),
	}
	s.nextID++

	post.Comments = append(post.Comments, comment)
	return &comment, nil
}

// DeletePost removes the post with the given id. Authorization is the
// caller's responsibility; the moderation service gates this.
func (s *ContentStore) DeletePost(postID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == postID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "post", ID: strconv.FormatInt(postID, 10)}
}

// RemoveByAuthor removes every post authored by the given username and
// returns how many were removed. Comments by that user on other posts are
// left in place.
func (s *ContentStore) RemoveByAuthor(username string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.posts[:0]
	removed := 0
	for _, p := range s.posts {
		if p.AuthorUsername == username {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.posts = kept
	return removed
}

// Get returns the post with the given id.
func (s *ContentStore) Get(postID int64) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.find(postID)
	if post == nil {
		return nil, &NotFoundError{Kind: "post", ID: strconv.FormatInt(postID, 10)}
	}
	return post.Clone(), nil
}

// Posts returns a snapshot of the feed, most recent first. Every entry is
// a detached copy; later mutations of the store never show through, so
// callers may encode the snapshot without holding the lock.
func (s *ContentStore) Posts() []*models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

func (s *ContentStore) find(postID int64) *models.Post {
	for _, p := range s.posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}
