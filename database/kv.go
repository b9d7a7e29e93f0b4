package database

import "database/sql"

// Postgres is the key-value persistence adapter backed by a single
// profile_kv table. Values are plain strings; there is no schema
// versioning and no atomicity across keys.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) (*Postgres, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS profile_kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow(`SELECT value FROM profile_kv WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (p *Postgres) Set(key, value string) error {
	_, err := p.db.Exec(`
		INSERT INTO profile_kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	return err
}
