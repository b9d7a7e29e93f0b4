package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"joao23.app/social-feed/database"
	"joao23.app/social-feed/models"
)

func TestProfileDefaults(t *testing.T) {
	s := NewProfileStore(database.NewMemory())

	p, err := s.Get()

	require.NoError(t, err)
	assert.Equal(t, "", p.Username)
	assert.Equal(t, "", p.Bio)
	assert.Equal(t, "/placeholder.svg", p.PhotoURL)
	assert.Equal(t, 0, p.FollowerCount)
}

func TestProfileRoundTrip(t *testing.T) {
	s := NewProfileStore(database.NewMemory())

	want := models.Profile{
		Username:      "maria.silva",
		Bio:           "olá!",
		PhotoURL:      "data:image/png;base64,AAAA",
		FollowerCount: 500,
	}
	require.NoError(t, s.Set(want))

	got, err := s.Get()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileMalformedFollowerCount(t *testing.T) {
	kv := database.NewMemory()
	require.NoError(t, kv.Set("followers", "not-a-number"))

	p, err := NewProfileStore(kv).Get()

	require.NoError(t, err)
	assert.Equal(t, 0, p.FollowerCount)
}

// failingKV errors on a chosen key to exercise adapter failure paths.
type failingKV struct {
	inner   KV
	failKey string
}

func (f *failingKV) Get(key string) (string, bool, error) {
	if key == f.failKey {
		return "", false, errors.New("adapter unavailable")
	}
	return f.inner.Get(key)
}

func (f *failingKV) Set(key, value string) error {
	if key == f.failKey {
		return errors.New("adapter unavailable")
	}
	return f.inner.Set(key, value)
}

func TestProfileAdapterFailureIsFatalToOperation(t *testing.T) {
	inner := database.NewMemory()
	s := NewProfileStore(&failingKV{inner: inner, failKey: "bio"})

	_, err := s.Get()
	assert.Error(t, err)

	err = s.Set(models.Profile{Username: "bob", Bio: "hi"})
	assert.Error(t, err)

	// The write sequence stops at the first failure, so keys past the
	// failing one are untouched.
	_, ok, kerr := inner.Get("username")
	require.NoError(t, kerr)
	assert.True(t, ok)
	_, ok, kerr = inner.Get("photoUrl")
	require.NoError(t, kerr)
	assert.False(t, ok)
}
