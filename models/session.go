package models

type Role string

const (
	RoleGuest  Role = "guest"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Session is the identity resolved once at startup from the persisted
// profile. It is passed by reference to every operation that needs
// authorship or authorization context and is never re-derived per call.
type Session struct {
	Username string `json:"username"`
	Verified bool   `json:"verified"`
	IsAdmin  bool   `json:"is_admin"`
	Role     Role   `json:"role"`
}
