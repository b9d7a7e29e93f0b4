package models

// DirectoryUser is an entry in the searchable user directory.
type DirectoryUser struct {
	Username  string `json:"username"`
	Followers int    `json:"followers"`
	Verified  bool   `json:"verified"`
}
