package models

// Profile is the single persisted identity record. Each field is stored
// under its own key in the persistence adapter.
type Profile struct {
	Username      string `json:"username"`
	Bio           string `json:"bio"`
	PhotoURL      string `json:"photo_url"`
	FollowerCount int    `json:"followers"`
}
