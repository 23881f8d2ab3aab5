// Package memory provides an in-memory client-state store used by tests
// and the ephemeral state driver.
package memory

import (
	"context"
	"sync"

	"github.com/openshelf/librarium/internal/domain"
	"github.com/openshelf/librarium/internal/storage"
)

// Store keeps client state in process memory only.
type Store struct {
	mu        sync.RWMutex
	user      domain.User
	hasUser   bool
	tokens    domain.TokenPair
	hasTokens bool
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

// PutUser stores the user record.
func (s *Store) PutUser(ctx context.Context, user domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.hasUser = true
	return nil
}

// GetUser returns the stored user record.
func (s *Store) GetUser(ctx context.Context) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasUser {
		return domain.User{}, storage.ErrNotFound
	}
	return s.user, nil
}

// DeleteUser removes the stored user record.
func (s *Store) DeleteUser(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = domain.User{}
	s.hasUser = false
	return nil
}

// PutTokens stores the token pair.
func (s *Store) PutTokens(ctx context.Context, tokens domain.TokenPair) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokens
	s.hasTokens = true
	return nil
}

// GetTokens returns the stored token pair.
func (s *Store) GetTokens(ctx context.Context) (domain.TokenPair, error) {
	if err := ctx.Err(); err != nil {
		return domain.TokenPair{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasTokens {
		return domain.TokenPair{}, storage.ErrNotFound
	}
	return s.tokens, nil
}

// DeleteTokens removes the stored token pair.
func (s *Store) DeleteTokens(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = domain.TokenPair{}
	s.hasTokens = false
	return nil
}

var _ storage.Store = (*Store)(nil)
