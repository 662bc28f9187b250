package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// KVRepo stores whole JSON documents by key in sqlite. It backs the
// persistence gateway; one row per logical key.
type KVRepo struct{ db *sqlx.DB }

func NewKVRepo(db *sqlx.DB) *KVRepo { return &KVRepo{db: db} }

func (r *KVRepo) Get(key string) ([]byte, error) {
	var value string
	err := r.db.Get(&value, `SELECT value FROM kv_store WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // absent, not an error
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (r *KVRepo) Set(key string, value []byte) error {
	_, err := r.db.Exec(`
		INSERT INTO kv_store(key,value,updated_at) VALUES(?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	return err
}

func (r *KVRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM kv_store WHERE key = ?`, key)
	return err
}
