package models

import "time"

// NotificationKind is a closed set: every notification is a like, a
// comment, or a follow. The presentation layer maps each kind to a fixed
// icon and tab.
type NotificationKind string

const (
	NotificationLike    NotificationKind = "like"
	NotificationComment NotificationKind = "comment"
	NotificationFollow  NotificationKind = "follow"
)

func (k NotificationKind) Valid() bool {
	switch k {
	case NotificationLike, NotificationComment, NotificationFollow:
		return true
	}
	return false
}

type Notification struct {
	ID        int64            `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Actor     string           `json:"actor"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}
