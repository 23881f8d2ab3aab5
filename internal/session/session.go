package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/openshelf/librarium/internal/domain"
	"github.com/openshelf/librarium/internal/storage"
)

// Session is a snapshot of the client's authentication state.
type Session struct {
	Authenticated bool
	User          domain.User
	Tokens        domain.TokenPair
}

// Store owns the current session and writes every change through to the
// backing state store before reporting success.
type Store struct {
	mu      sync.RWMutex
	state   storage.Store
	session Session
}

// New creates a session store backed by the given state store.
func New(state storage.Store) (*Store, error) {
	if state == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &Store{state: state}, nil
}

// Init restores a previously persisted session. Missing or unreadable
// state leaves the session anonymous; Init never fails.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.state.GetUser(ctx)
	if err != nil {
		return
	}
	tokens, err := s.state.GetTokens(ctx)
	if err != nil {
		return
	}

	// Both halves have to survive the restart: a user record without a
	// usable token pair cannot make authenticated calls, so it stays
	// anonymous until the next sign-in.
	s.session = Session{
		Authenticated: !user.IsZero() && !tokens.IsZero(),
		User:          user,
		Tokens:        tokens,
	}
}

// Current returns a snapshot of the session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Authenticated reports whether a user is signed in.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Authenticated
}

// User returns the signed-in user, zero when anonymous.
func (s *Store) User() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.User
}

// AccessToken returns the current access token, empty when anonymous.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Tokens.AccessToken
}

// SetUser records the signed-in user and persists it. The in-memory
// session is untouched when persistence fails.
func (s *Store) SetUser(ctx context.Context, user domain.User) error {
	if user.IsZero() {
		return fmt.Errorf("user is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.PutUser(ctx, user); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	s.session.User = user
	s.session.Authenticated = true
	return nil
}

// SetTokens records the token pair and persists it.
func (s *Store) SetTokens(ctx context.Context, tokens domain.TokenPair) error {
	if tokens.IsZero() {
		return fmt.Errorf("tokens are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.PutTokens(ctx, tokens); err != nil {
		return fmt.Errorf("persist tokens: %w", err)
	}
	s.session.Tokens = tokens
	return nil
}

// UpdateUser replaces the signed-in user record in place, keeping the
// persisted copy current. It is a no-op when anonymous.
func (s *Store) UpdateUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Authenticated {
		return nil
	}
	if err := s.state.PutUser(ctx, user); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	s.session.User = user
	return nil
}

// Logout clears the session and removes the persisted state. It is
// idempotent and always leaves the in-memory session anonymous, even
// when the state store fails to clear.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{}

	if err := s.state.DeleteUser(ctx); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	if err := s.state.DeleteTokens(ctx); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}
