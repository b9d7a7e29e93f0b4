package store

import (
	"strings"

	"joao23.app/social-feed/models"
)

// adminUsername is the single privileged identity. Verification and admin
// rights both derive from this one case-insensitive comparison; there is
// no general role system behind it.
const adminUsername = "ogusta"

// ResolveSession derives the session for this process from the persisted
// profile. It is called once at startup; the result is injected wherever
// authorship or authorization context is needed.
func ResolveSession(profiles *ProfileStore) (*models.Session, error) {
	p, err := profiles.Get()
	if err != nil {
		return nil, err
	}
	return SessionFor(p.Username), nil
}

// SessionFor builds the session for a username. An empty username is an
// anonymous guest; the privileged username is a verified admin; everyone
// else is a plain member.
func SessionFor(username string) *models.Session {
	s := &models.Session{Username: username, Role: models.RoleMember}
	switch {
	case username == "":
		s.Role = models.RoleGuest
	case strings.ToLower(username) == adminUsername:
		s.Verified = true
		s.IsAdmin = true
		s.Role = models.RoleAdmin
	}
	return s
}
