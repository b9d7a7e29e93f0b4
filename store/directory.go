package store

import (
	"strings"
	"sync"

	"joao23.app/social-feed/models"
)

// Directory is the searchable user listing. Entries are seeded at startup;
// the simulator has no account registration.
type Directory struct {
	mu    sync.Mutex
	users []*models.DirectoryUser
}

func NewDirectory() *Directory {
	return &Directory{
		users: []*models.DirectoryUser{
			{Username: "ogusta", Followers: 1000, Verified: true},
			{Username: "maria.silva", Followers: 500},
			{Username: "joao.santos", Followers: 750},
		},
	}
}

// Search returns entries whose username contains the term,
// case-insensitively. An empty term matches everyone.
func (d *Directory) Search(term string) []models.DirectoryUser {
	d.mu.Lock()
	defer d.mu.Unlock()

	term = strings.ToLower(term)
	var out []models.DirectoryUser
	for _, u := range d.users {
		if strings.Contains(strings.ToLower(u.Username), term) {
			out = append(out, *u)
		}
	}
	return out
}

// Follow increments the target's follower count on behalf of the session
// identity. Guests cannot follow, and a user cannot follow themselves.
func (d *Directory) Follow(actor *models.Session, username string) (*models.DirectoryUser, error) {
	if actor == nil || actor.Username == "" {
		return nil, &ValidationError{Reason: "a profile is required before following"}
	}
	if strings.EqualFold(actor.Username, username) {
		return nil, &ValidationError{Reason: "cannot follow yourself"}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Username, username) {
			u.Followers++
			copied := *u
			return &copied, nil
		}
	}
	return nil, &NotFoundError{Kind: "user", ID: username}
}
