package storage

import (
	"context"
	"errors"

	"github.com/openshelf/librarium/internal/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Keys under which client state is persisted. Every backend uses the same
// names so state files stay interchangeable.
const (
	KeyUser   = "user"
	KeyTokens = "tokens"
)

// Store persists the client session state between runs.
//
// Writes are durable before the call returns; a crash or restart right after
// a Put must observe the new value.
type Store interface {
	PutUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context) (domain.User, error)
	DeleteUser(ctx context.Context) error

	PutTokens(ctx context.Context, tokens domain.TokenPair) error
	GetTokens(ctx context.Context) (domain.TokenPair, error)
	DeleteTokens(ctx context.Context) error

	Close() error
}
