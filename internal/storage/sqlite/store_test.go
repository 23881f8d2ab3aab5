package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/openshelf/librarium/internal/domain"
	"github.com/openshelf/librarium/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "librarium.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestStorePutGetUser(t *testing.T) {
	store := openTestStore(t)

	user := domain.User{
		ID:    "42",
		Name:  "reader",
		Email: "reader@example.com",
		Role:  domain.Role{Name: "user"},
	}
	if err := store.PutUser(context.Background(), user); err != nil {
		t.Fatalf("put user: %v", err)
	}

	loaded, err := store.GetUser(context.Background())
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if loaded.ID != user.ID {
		t.Fatalf("expected id %q, got %q", user.ID, loaded.ID)
	}
	if loaded.Role.Name != user.Role.Name {
		t.Fatalf("expected role %q, got %q", user.Role.Name, loaded.Role.Name)
	}
}

func TestStorePutUserOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.PutUser(context.Background(), domain.User{ID: "1", Name: "first"}); err != nil {
		t.Fatalf("put first user: %v", err)
	}
	if err := store.PutUser(context.Background(), domain.User{ID: "2", Name: "second"}); err != nil {
		t.Fatalf("put second user: %v", err)
	}

	loaded, err := store.GetUser(context.Background())
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if loaded.ID != "2" {
		t.Fatalf("expected id %q, got %q", "2", loaded.ID)
	}
}

func TestStoreGetTokensMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetTokens(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreDeleteTokens(t *testing.T) {
	store := openTestStore(t)

	tokens := domain.TokenPair{AccessToken: "a.b.c", RefreshToken: "refresh"}
	if err := store.PutTokens(context.Background(), tokens); err != nil {
		t.Fatalf("put tokens: %v", err)
	}
	if err := store.DeleteTokens(context.Background()); err != nil {
		t.Fatalf("delete tokens: %v", err)
	}
	if _, err := store.GetTokens(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStoreUserAndTokensIndependent(t *testing.T) {
	store := openTestStore(t)

	if err := store.PutUser(context.Background(), domain.User{ID: "42"}); err != nil {
		t.Fatalf("put user: %v", err)
	}
	if err := store.PutTokens(context.Background(), domain.TokenPair{AccessToken: "a.b.c"}); err != nil {
		t.Fatalf("put tokens: %v", err)
	}
	if err := store.DeleteUser(context.Background()); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := store.GetTokens(context.Background()); err != nil {
		t.Fatalf("tokens should survive user delete: %v", err)
	}
}

func TestStoreContextCanceled(t *testing.T) {
	store := openTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.PutTokens(ctx, domain.TokenPair{AccessToken: "a.b.c"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
