// Package sqlite provides a SQLite-backed client-state store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/openshelf/librarium/internal/domain"
	"github.com/openshelf/librarium/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS client_state (
    key        TEXT PRIMARY KEY,
    value      BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// Store persists client state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite state store and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutUser persists the user record.
func (s *Store) PutUser(ctx context.Context, user domain.User) error {
	return s.put(ctx, storage.KeyUser, user)
}

// GetUser fetches the persisted user record.
func (s *Store) GetUser(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := s.get(ctx, storage.KeyUser, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// DeleteUser removes the persisted user record.
func (s *Store) DeleteUser(ctx context.Context) error {
	return s.delete(ctx, storage.KeyUser)
}

// PutTokens persists the token pair.
func (s *Store) PutTokens(ctx context.Context, tokens domain.TokenPair) error {
	return s.put(ctx, storage.KeyTokens, tokens)
}

// GetTokens fetches the persisted token pair.
func (s *Store) GetTokens(ctx context.Context) (domain.TokenPair, error) {
	var tokens domain.TokenPair
	if err := s.get(ctx, storage.KeyTokens, &tokens); err != nil {
		return domain.TokenPair{}, err
	}
	return tokens, nil
}

// DeleteTokens removes the persisted token pair.
func (s *Store) DeleteTokens(ctx context.Context) error {
	return s.delete(ctx, storage.KeyTokens)
}

func (s *Store) put(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO client_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		payload,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	var payload []byte
	row := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM client_state WHERE key = ?`, key)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM client_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

var _ storage.Store = (*Store)(nil)
