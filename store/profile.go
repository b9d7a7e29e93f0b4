package store

import (
	"fmt"
	"strconv"

	"joao23.app/social-feed/models"
)

// Keys the profile occupies in the persistence adapter. Values are plain
// strings; the follower count is stored as decimal text.
const (
	keyUsername  = "username"
	keyBio       = "bio"
	keyPhotoURL  = "photoUrl"
	keyFollowers = "followers"
)

const defaultPhotoURL = "/placeholder.svg"

// ProfileStore reads and writes the single persisted profile, one key per
// field, through the persistence adapter.
type ProfileStore struct {
	kv KV
}

func NewProfileStore(kv KV) *ProfileStore {
	return &ProfileStore{kv: kv}
}

// Get reads the four profile fields, defaulting any absent one. A
// follower value that does not parse as a decimal counts as zero.
func (s *ProfileStore) Get() (models.Profile, error) {
	var p models.Profile

	username, _, err := s.kv.Get(keyUsername)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read username: %w", err)
	}
	p.Username = username

	bio, _, err := s.kv.Get(keyBio)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read bio: %w", err)
	}
	p.Bio = bio

	photo, ok, err := s.kv.Get(keyPhotoURL)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read photoUrl: %w", err)
	}
	if !ok || photo == "" {
		photo = defaultPhotoURL
	}
	p.PhotoURL = photo

	followers, ok, err := s.kv.Get(keyFollowers)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read followers: %w", err)
	}
	if ok {
		// Malformed counts fall back to zero rather than failing the read.
		n, err := strconv.Atoi(followers)
		if err == nil {
			p.FollowerCount = n
		}
	}

	return p, nil
}

// Set writes each field independently. The adapter has no transactions, so
// an error mid-sequence leaves the stored profile partially updated; the
// first failure aborts the remaining writes and is surfaced to the caller.
func (s *ProfileStore) Set(p models.Profile) error {
	if err := s.kv.Set(keyUsername, p.Username); err != nil {
		return fmt.Errorf("write username: %w", err)
	}
	if err := s.kv.Set(keyBio, p.Bio); err != nil {
		return fmt.Errorf("write bio: %w", err)
	}
	if err := s.kv.Set(keyPhotoURL, p.PhotoURL); err != nil {
		return fmt.Errorf("write photoUrl: %w", err)
	}
	if err := s.kv.Set(keyFollowers, strconv.Itoa(p.FollowerCount)); err != nil {
		return fmt.Errorf("write followers: %w", err)
	}
	return nil
}
