package store

// KV is the persistence adapter the profile store writes through: a plain
// key-value surface with no transactions and no atomicity across keys.
// Get reports ok=false when the key is absent.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
