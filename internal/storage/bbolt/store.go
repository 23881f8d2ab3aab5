// Package bbolt provides a BoltDB-backed client-state store.
package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/openshelf/librarium/internal/domain"
	"github.com/openshelf/librarium/internal/storage"
)

const stateBucket = "state"

// Store provides a BoltDB-backed state store.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
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
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(stateBucket))
		if bucket == nil {
			return fmt.Errorf("state bucket is missing")
		}
		return bucket.Put([]byte(key), payload)
	})
}

func (s *Store) get(ctx context.Context, key string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(stateBucket))
		if bucket == nil {
			return fmt.Errorf("state bucket is missing")
		}
		payload := bucket.Get([]byte(key))
		if payload == nil {
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(payload, target); err != nil {
			return fmt.Errorf("unmarshal %s: %w", key, err)
		}
		return nil
	})
}

func (s *Store) delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(stateBucket))
		if bucket == nil {
			return fmt.Errorf("state bucket is missing")
		}
		return bucket.Delete([]byte(key))
	})
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(stateBucket))
		if err != nil {
			return fmt.Errorf("create state bucket: %w", err)
		}
		return nil
	})
}

var _ storage.Store = (*Store)(nil)
