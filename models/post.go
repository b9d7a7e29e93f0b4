package models

import "time"

type Post struct {
	ID               int64     `json:"id"`
	AuthorUsername   string    `json:"author_username"`
	Content          string    `json:"content"`
	LikeCount        int       `json:"like_count"`
	Comments         []Comment `json:"comments"`
	VerifiedSnapshot bool      `json:"is_verified"`
	CreatedAt        time.Time `json:"created_at"`
}

// Clone returns a detached copy whose Comments slice shares no backing
// array with the original. Stores hand out clones so callers can read and
// encode them without holding the store lock.
func (p *Post) Clone() *Post {
	c := *p
	c.Comments = make([]Comment, len(p.Comments))
	copy(c.Comments, p.Comments)
	return &c
}

type Comment struct {
	ID               int64     `json:"id"`
	PostID           int64     `json:"post_id"`
	AuthorUsername   string    `json:"author_username"`
	Content          string    `json:"content"`
	LikeCount        int       `json:"like_count"`
	VerifiedSnapshot bool      `json:"is_verified"`
	CreatedAt        time.Time `json:"created_at"`
}
