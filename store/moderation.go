package store

import (
	"sync"

	"joao23.app/social-feed/models"
)

// ModerationService gates destructive operations behind the admin role and
// keeps the process-lifetime ban set. There is no unban.
type ModerationService struct {
	mu      sync.Mutex
	banned  map[string]struct{}
	content *ContentStore
	stories *StoryStore
}

func NewModerationService(content *ContentStore, stories *StoryStore) *ModerationService {
	return &ModerationService{
		banned:  make(map[string]struct{}),
		content: content,
		stories: stories,
	}
}

// BanUser records the username as banned and removes every post they
// authored. The cascade stops there: their comments on other posts and
// their stories are left in place, and nothing prevents the username from
// posting again.
func (m *ModerationService) BanUser(actor *models.Session, username string) (int, error) {
	if actor == nil || !actor.IsAdmin {
		return 0, &AuthorizationError{Reason: "only an admin can ban users"}
	}
	if username == "" {
		return 0, &ValidationError{Reason: "username cannot be empty"}
	}

	m.mu.Lock()
	m.banned[username] = struct{}{}
	m.mu.Unlock()

	return m.content.RemoveByAuthor(username), nil
}

// DeletePost is the admin-authorized wrapper over the content store's
// delete primitive.
func (m *ModerationService) DeletePost(actor *models.Session, postID int64) error {
	if actor == nil || !actor.IsAdmin {
		return &AuthorizationError{Reason: "only an admin can delete posts"}
	}
	return m.content.DeletePost(postID)
}

// DeleteStory is the admin-authorized wrapper over the story store's
// delete primitive.
func (m *ModerationService) DeleteStory(actor *models.Session, storyID int64) error {
	if actor == nil || !actor.IsAdmin {
		return &AuthorizationError{Reason: "only an admin can delete stories"}
	}
	return m.stories.Delete(storyID, actor)
}

func (m *ModerationService) IsBanned(username string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.banned[username]
	return ok
}
