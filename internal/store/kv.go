package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// KV is the durable key-value store: one JSON snapshot per key,
// overwritten whole on every change.
type KV struct {
	db *sqlx.DB
}

func NewKV(db *sqlx.DB) *KV {
	return &KV{db: db}
}

// Get unmarshals the snapshot stored under key into dest. The bool is
// false when the key has never been written.
func (kv *KV) Get(key string, dest any) (bool, error) {
	var raw string
	err := kv.db.Get(&raw, `SELECT value FROM kv_store WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Put replaces the snapshot stored under key.
func (kv *KV) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = kv.db.Exec(`INSERT INTO kv_store (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
