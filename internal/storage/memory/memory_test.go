package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/openshelf/librarium/internal/domain"
	"github.com/openshelf/librarium/internal/storage"
)

func TestStoreEmpty(t *testing.T) {
	store := New()

	if _, err := store.GetUser(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for user, got %v", err)
	}
	if _, err := store.GetTokens(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for tokens, got %v", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := New()

	user := domain.User{ID: "42", Name: "reader"}
	if err := store.PutUser(context.Background(), user); err != nil {
		t.Fatalf("put user: %v", err)
	}
	tokens := domain.TokenPair{AccessToken: "a.b.c", RefreshToken: "refresh"}
	if err := store.PutTokens(context.Background(), tokens); err != nil {
		t.Fatalf("put tokens: %v", err)
	}

	loadedUser, err := store.GetUser(context.Background())
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if loadedUser.ID != user.ID {
		t.Fatalf("expected id %q, got %q", user.ID, loadedUser.ID)
	}

	loadedTokens, err := store.GetTokens(context.Background())
	if err != nil {
		t.Fatalf("get tokens: %v", err)
	}
	if loadedTokens.AccessToken != tokens.AccessToken {
		t.Fatalf("expected access token %q, got %q", tokens.AccessToken, loadedTokens.AccessToken)
	}
}

func TestStoreDelete(t *testing.T) {
	store := New()

	if err := store.PutUser(context.Background(), domain.User{ID: "42"}); err != nil {
		t.Fatalf("put user: %v", err)
	}
	if err := store.DeleteUser(context.Background()); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := store.GetUser(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := store.DeleteTokens(context.Background()); err != nil {
		t.Fatalf("delete missing tokens: %v", err)
	}
}

func TestStoreContextCanceled(t *testing.T) {
	store := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.PutUser(ctx, domain.User{ID: "42"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
