package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openshelf/librarium/internal/domain"
	lberrors "github.com/openshelf/librarium/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, server
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
	if _, err := New(Config{BaseURL: "not a url"}); err == nil {
		t.Fatal("expected error for relative base URL")
	}
}

func TestBooksPage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/book/all/2" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(domain.BookPage{
			Items: []domain.Book{
				{ID: "1", Name: "Dune", ISBN: "9780441013593"},
			},
			TotalPages: 5,
		})
	}))

	page, err := client.BooksPage(context.Background(), 2)
	if err != nil {
		t.Fatalf("books page: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(page.Items))
	}
	if page.TotalPages != 5 {
		t.Fatalf("expected 5 total pages, got %d", page.TotalPages)
	}
}

func TestBooksPageBadRequest(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no books on page", http.StatusBadRequest)
	}))

	_, err := client.BooksPage(context.Background(), 99)
	if !lberrors.IsCode(err, lberrors.CodePageNotFound) {
		t.Fatalf("expected PAGE_NOT_FOUND, got %v", err)
	}
}

func TestBookInfoNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/book/book-info/9780441013593" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := client.BookInfo(context.Background(), "9780441013593")
	if !lberrors.IsCode(err, lberrors.CodeBookNotFound) {
		t.Fatalf("expected BOOK_NOT_FOUND, got %v", err)
	}
	if lberrors.GetKind(err) != lberrors.KindNotFound {
		t.Fatalf("expected not-found kind, got %v", lberrors.GetKind(err))
	}
}

func TestGenreNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := client.Genre(context.Background(), "17")
	if !lberrors.IsCode(err, lberrors.CodeGenreNotFound) {
		t.Fatalf("expected GENRE_NOT_FOUND, got %v", err)
	}
}

func TestSearchNoMatches(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := client.SearchBooks(context.Background(), "missing title")
	if !lberrors.IsCode(err, lberrors.CodeSearchNoMatches) {
		t.Fatalf("expected SEARCH_NO_MATCHES, got %v", err)
	}
}

func TestFilterBooksQuery(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("genre"); got != "fantasy" {
			t.Errorf("expected genre %q, got %q", "fantasy", got)
		}
		if got := r.URL.Query().Get("authorName"); got != "Herbert" {
			t.Errorf("expected authorName %q, got %q", "Herbert", got)
		}
		json.NewEncoder(w).Encode([]domain.Book{{ID: "1"}})
	}))

	books, err := client.FilterBooks(context.Background(), "fantasy", "Herbert")
	if err != nil {
		t.Fatalf("filter books: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(books))
	}
}

func TestLogin(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/authentication/login" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Email != "reader@example.com" {
			t.Errorf("expected email %q, got %q", "reader@example.com", body.Email)
		}
		json.NewEncoder(w).Encode(domain.TokenPair{AccessToken: "a.b.c", RefreshToken: "refresh"})
	}))

	tokens, err := client.Login(context.Background(), "reader@example.com", "Secret1!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tokens.AccessToken != "a.b.c" {
		t.Fatalf("expected access token %q, got %q", "a.b.c", tokens.AccessToken)
	}
}

func TestRegisterReturnsTokenPair(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/authentication/register" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Name != "reader" {
			t.Errorf("expected name %q, got %q", "reader", body.Name)
		}
		json.NewEncoder(w).Encode(domain.TokenPair{AccessToken: "a.b.c", RefreshToken: "refresh"})
	}))

	tokens, err := client.Register(context.Background(), "reader", "reader@example.com", "Secret1!")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tokens.AccessToken != "a.b.c" {
		t.Fatalf("expected access token %q, got %q", "a.b.c", tokens.AccessToken)
	}
	if tokens.RefreshToken != "refresh" {
		t.Fatalf("expected refresh token %q, got %q", "refresh", tokens.RefreshToken)
	}
}

func TestLoginRejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Invalid credentials"}`, http.StatusBadRequest)
	}))

	_, err := client.Login(context.Background(), "reader@example.com", "wrong")
	if !lberrors.IsCode(err, lberrors.CodeAuthRejected) {
		t.Fatalf("expected AUTH_REJECTED, got %v", err)
	}
	if got := lberrors.GetMetadata(err)["Message"]; got != "Invalid credentials" {
		t.Fatalf("expected server message, got %q", got)
	}
}

func TestUnauthorizedMapsToAuthRejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.TakeBook(context.Background(), "book-1", "user-1")
	if !lberrors.IsCode(err, lberrors.CodeAuthRejected) {
		t.Fatalf("expected AUTH_REJECTED, got %v", err)
	}
}

func TestServerErrorKeepsStatusAndMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.Authors(context.Background())
	if !lberrors.IsCode(err, lberrors.CodeRemoteRejected) {
		t.Fatalf("expected REMOTE_REJECTED, got %v", err)
	}
	if got := lberrors.GetHTTPStatus(err); got != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", got)
	}
	if got := lberrors.GetMetadata(err)["Message"]; got != "boom" {
		t.Fatalf("expected message %q, got %q", "boom", got)
	}
}

func TestNetworkUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := New(Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Genres(context.Background())
	if !lberrors.IsCode(err, lberrors.CodeNetworkUnreachable) {
		t.Fatalf("expected NETWORK_UNREACHABLE, got %v", err)
	}
	if lberrors.GetKind(err) != lberrors.KindNetwork {
		t.Fatalf("expected network kind, got %v", lberrors.GetKind(err))
	}
}

func TestBearerAndRequestID(t *testing.T) {
	var authHeader, requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-Id")
		json.NewEncoder(w).Encode(domain.User{ID: "1"})
	}))
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL: server.URL,
		Token:   func() string { return "a.b.c" },
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.User(context.Background(), "1"); err != nil {
		t.Fatalf("get user: %v", err)
	}
	if authHeader != "Bearer a.b.c" {
		t.Fatalf("expected bearer header, got %q", authHeader)
	}
	if requestID == "" {
		t.Fatal("expected X-Request-Id header")
	}
}

func TestAnonymousSendsNoBearer(t *testing.T) {
	var authHeader string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]domain.Genre{})
	}))

	if _, err := client.Genres(context.Background()); err != nil {
		t.Fatalf("get genres: %v", err)
	}
	if authHeader != "" {
		t.Fatalf("expected no bearer header, got %q", authHeader)
	}
}

func TestTakeBookBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/book/take-book" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["bookId"] != "book-1" || body["userId"] != "user-1" {
			t.Errorf("unexpected body %v", body)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.TakeBook(context.Background(), "book-1", "user-1"); err != nil {
		t.Fatalf("take book: %v", err)
	}
}

func TestAddBookPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if _, ok := body["authorIds"]; !ok {
			t.Errorf("expected authorIds field, got %v", body)
		}
		w.WriteHeader(http.StatusCreated)
	}))

	req := domain.AddBookRequest{
		Name:      "Dune",
		ISBN:      "9780441013593",
		GenreID:   "3",
		Count:     2,
		AuthorIDs: []string{"11"},
	}
	if err := client.AddBook(context.Background(), req); err != nil {
		t.Fatalf("add book: %v", err)
	}
}

func TestUploadImage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer file.Close()
		if !strings.HasSuffix(header.Filename, ".png") {
			t.Errorf("expected .png suffix, got %q", header.Filename)
		}
		if header.Filename == "cover.png" {
			t.Error("expected a unique stored filename")
		}
		json.NewEncoder(w).Encode(map[string]string{"url": "/images/stored.png"})
	}))

	ref, err := client.UploadImage(context.Background(), "cover.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("upload image: %v", err)
	}
	if ref != "/images/stored.png" {
		t.Fatalf("expected stored reference, got %q", ref)
	}
}

func TestResolveImageURL(t *testing.T) {
	client, server := newTestClient(t, http.NotFoundHandler())

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "empty", ref: "", want: ""},
		{name: "blank", ref: "   ", want: ""},
		{name: "absolute", ref: "https://cdn.example.com/cover.png", want: "https://cdn.example.com/cover.png"},
		{name: "relative", ref: "/images/cover.png", want: server.URL + "/images/cover.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := client.ResolveImageURL(tt.ref); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
