// Package repositories implements local persistence for flick.
//
// The only durable state a client instance owns is the session pair: the
// auth token and the serialized user profile. They live in the session_state
// table as two keyed rows, always written and cleared together.
package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// SessionRepository persists the session pair to SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Load reads the persisted token and serialized user. A missing row comes
// back as an empty string; the caller decides how to resolve a partial pair.
func (r *SessionRepository) Load(ctx context.Context) (token, userJSON string, err error) {
	rows, err := r.db.QueryContext(ctx, "SELECT key, value FROM session_state WHERE key IN (?, ?)", tokenKey, userKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to query session state: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return "", "", fmt.Errorf("failed to scan session state: %w", err)
		}
		switch key {
		case tokenKey:
			token = value
		case userKey:
			userJSON = value
		}
	}

	if err := rows.Err(); err != nil {
		return "", "", fmt.Errorf("row iteration error: %w", err)
	}

	return token, userJSON, nil
}

// Save writes the token and serialized user in a single transaction so the
// pair is never durably partial.
func (r *SessionRepository) Save(ctx context.Context, token, userJSON string) error {
	if token == "" || userJSON == "" {
		return fmt.Errorf("refusing to persist partial session")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO session_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	for _, kv := range [][2]string{{tokenKey, token}, {userKey, userJSON}} {
		if _, err := tx.ExecContext(ctx, query, kv[0], kv[1]); err != nil {
			return fmt.Errorf("failed to write session state: %w", err)
		}
	}

	return tx.Commit()
}

// Clear removes both session rows in a single transaction.
func (r *SessionRepository) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM session_state WHERE key IN (?, ?)", tokenKey, userKey); err != nil {
		return fmt.Errorf("failed to clear session state: %w", err)
	}

	return tx.Commit()
}
