package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

// SessionRepository persists the signed-in user and small preferences in the
// local SQLite database. The session lives in a single-row table as a JSON
// payload, mirroring how the record travels over the wire.
type SessionRepository struct {
	db *sql.DB
}

// compile-time check: *SessionRepository must satisfy port.SessionStore
var _ port.SessionStore = (*SessionRepository)(nil)

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) GetUser(ctx context.Context) (*model.AuthUser, error) {
	const query = `SELECT payload FROM auth_session WHERE id = 1`

	var payload string
	if err := r.db.QueryRowContext(ctx, query).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var u model.AuthUser
	if err := json.Unmarshal([]byte(payload), &u); err != nil {
		// an unreadable record degrades to a guest session
		log.Printf("⚠️  discarding corrupt session payload: %v", err)
		return nil, nil
	}
	if u.ID == "" {
		return nil, nil
	}
	return &u, nil
}

func (r *SessionRepository) SaveUser(ctx context.Context, u *model.AuthUser) error {
	log.Printf("persisting session for user #%s...", u.ID)

	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}

	const query = `
      INSERT INTO auth_session (id, payload, updated_at)
      VALUES (1, ?, CURRENT_TIMESTAMP)
      ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
    `
	_, err = r.db.ExecContext(ctx, query, string(payload))
	return err
}

func (r *SessionRepository) DeleteUser(ctx context.Context) error {
	log.Print("clearing persisted session...")

	const query = `DELETE FROM auth_session WHERE id = 1`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *SessionRepository) GetPreference(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM preferences WHERE key = ?`

	var value string
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *SessionRepository) SetPreference(ctx context.Context, key, value string) error {
	const query = `
      INSERT INTO preferences (key, value, updated_at)
      VALUES (?, ?, CURRENT_TIMESTAMP)
      ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
    `
	_, err := r.db.ExecContext(ctx, query, key, value)
	return err
}
