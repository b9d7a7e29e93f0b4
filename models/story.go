package models

import "time"

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaUpload is the decoded media payload handed to the story store.
// Data is an opaque data URI produced by the client-side decoder;
// ContentType is the declared MIME type of the original file.
type MediaUpload struct {
	Data        string `json:"data"`
	ContentType string `json:"content_type"`
}

type Story struct {
	ID               int64     `json:"id"`
	AuthorUsername   string    `json:"author_username"`
	MediaRef         string    `json:"media_url"`
	MediaKind        MediaKind `json:"media_type"`
	ViewCount        int       `json:"view_count"`
	LikeCount        int       `json:"like_count"`
	ViewedBy         []string  `json:"viewed_by"`
	LikedBy          []string  `json:"liked_by"`
	VerifiedSnapshot bool      `json:"is_verified"`
	CreatedAt        time.Time `json:"created_at"`
}

// Clone returns a detached copy with its own ViewedBy/LikedBy slices, safe
// to read and encode outside the store lock.
func (s *Story) Clone() *Story {
	c := *s
	c.ViewedBy = make([]string, len(s.ViewedBy))
	copy(c.ViewedBy, s.ViewedBy)
	c.LikedBy = make([]string, len(s.LikedBy))
	copy(c.LikedBy, s.LikedBy)
	return &c
}

// ViewedByUser reports whether the given username already viewed the story.
func (s *Story) ViewedByUser(username string) bool {
	for _, v := range s.ViewedBy {
		if v == username {
			return true
		}
	}
	return false
}

// LikedByUser reports whether the given username already liked the story.
func (s *Story) LikedByUser(username string) bool {
	for _, v := range s.LikedBy {
		if v == username {
			return true
		}
	}
	return false
}
