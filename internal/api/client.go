package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/openshelf/librarium/internal/domain"
	lberrors "github.com/openshelf/librarium/internal/errors"
)

// TokenSource supplies the current access token, empty when anonymous.
type TokenSource func() string

// Client talks to the remote library service.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      TokenSource
	tracer     trace.Tracer
}

// Config carries the client's dependencies.
type Config struct {
	// BaseURL is the remote origin, e.g. https://library.example.com.
	// The /api prefix is appended by the client.
	BaseURL string
	// HTTPClient overrides http.DefaultClient when set.
	HTTPClient *http.Client
	// Token supplies the bearer token for authorized calls.
	Token TokenSource
}

// New creates a gateway client for the given remote origin.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	token := cfg.Token
	if token == nil {
		token = func() string { return "" }
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		token:      token,
		tracer:     otel.Tracer("librarium/api"),
	}, nil
}

// call describes one remote request.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	// badRequest is the code a 400 response maps to. Zero means the
	// response is treated as a generic remote rejection.
	badRequest lberrors.Code
}

func (c *Client) do(ctx context.Context, req call, out any) error {
	ctx, span := c.tracer.Start(ctx, "api.call", trace.WithAttributes(
		attribute.String("http.method", req.method),
		attribute.String("http.route", req.path),
	))
	defer span.End()

	target := *c.baseURL
	target.Path = "/api" + req.path
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	var payload io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	c.decorate(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.SetStatus(codes.Error, "transport failure")
		return lberrors.Wrap(lberrors.CodeNetworkUnreachable, "remote service is unreachable", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(codes.Error, resp.Status)
		return c.remoteError(resp, req.badRequest)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return lberrors.Wrap(lberrors.CodeUnknown, "decode response body", err)
	}
	return nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// remoteError maps a non-2xx response onto a domain error. The response
// body is kept as metadata so screens can surface the server's own text.
func (c *Client) remoteError(resp *http.Response, badRequest lberrors.Code) error {
	message := readRemoteMessage(resp.Body)

	code := lberrors.CodeRemoteRejected
	switch {
	case resp.StatusCode == http.StatusBadRequest && badRequest != "":
		code = badRequest
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		code = lberrors.CodeAuthRejected
	}

	remoteErr := lberrors.Remote(code, lberrors.StatusText(resp.StatusCode), resp.StatusCode)
	if message != "" {
		remoteErr.Message = message
		remoteErr.Metadata = map[string]string{"Message": message}
	}
	return remoteErr
}

// readRemoteMessage extracts a human-readable message from an error
// response, tolerating both JSON envelopes and plain text.
func readRemoteMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 8<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		switch {
		case envelope.Message != "":
			return envelope.Message
		case envelope.Error != "":
			return envelope.Error
		case envelope.Title != "":
			return envelope.Title
		}
	}

	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return ""
	}
	return text
}

// BooksPage fetches one page of the catalog.
func (c *Client) BooksPage(ctx context.Context, page int) (domain.BookPage, error) {
	var result domain.BookPage
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       fmt.Sprintf("/book/all/%d", page),
		badRequest: lberrors.CodePageNotFound,
	}, &result)
	if err != nil {
		return domain.BookPage{}, err
	}
	return result, nil
}

// BookInfo fetches a single book by ISBN.
func (c *Client) BookInfo(ctx context.Context, isbn string) (domain.Book, error) {
	var result domain.Book
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/book/book-info/" + url.PathEscape(isbn),
		badRequest: lberrors.CodeBookNotFound,
	}, &result)
	if err != nil {
		return domain.Book{}, err
	}
	return result, nil
}

// Book fetches a single book by id.
func (c *Client) Book(ctx context.Context, id string) (domain.Book, error) {
	var result domain.Book
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/book/" + url.PathEscape(id),
		badRequest: lberrors.CodeBookNotFound,
	}, &result)
	if err != nil {
		return domain.Book{}, err
	}
	return result, nil
}

// SearchBooks finds books whose title matches the given text.
func (c *Client) SearchBooks(ctx context.Context, title string) ([]domain.Book, error) {
	var result []domain.Book
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/book/search/" + url.PathEscape(title),
		badRequest: lberrors.CodeSearchNoMatches,
	}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FilterBooks narrows the catalog by genre and author name. Either
// argument may be empty.
func (c *Client) FilterBooks(ctx context.Context, genre, authorName string) ([]domain.Book, error) {
	query := url.Values{}
	query.Set("genre", genre)
	query.Set("authorName", authorName)

	var result []domain.Book
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/book/filter",
		query:      query,
		badRequest: lberrors.CodeFilterNoMatches,
	}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddBook creates a new catalog entry.
func (c *Client) AddBook(ctx context.Context, req domain.AddBookRequest) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "/book/add",
		body:   req,
	}, nil)
}

// UpdateBook replaces an existing catalog entry.
func (c *Client) UpdateBook(ctx context.Context, id string, req domain.UpdateBookRequest) error {
	return c.do(ctx, call{
		method:     http.MethodPut,
		path:       "/book/update/" + url.PathEscape(id),
		body:       req,
		badRequest: lberrors.CodeBookNotFound,
	}, nil)
}

// DeleteBook removes a catalog entry.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.do(ctx, call{
		method:     http.MethodDelete,
		path:       "/book/delete/" + url.PathEscape(id),
		badRequest: lberrors.CodeBookNotFound,
	}, nil)
}

// AddBookImage attaches an uploaded image to a book.
func (c *Client) AddBookImage(ctx context.Context, id, imageURL string) error {
	return c.do(ctx, call{
		method:     http.MethodPut,
		path:       "/book/add-image/" + url.PathEscape(id),
		body:       map[string]string{"imageURL": imageURL},
		badRequest: lberrors.CodeBookNotFound,
	}, nil)
}

// loanRequest is the body of take-book and return-book calls.
type loanRequest struct {
	BookID string `json:"bookId"`
	UserID string `json:"userId"`
}

// TakeBook loans a book to a user.
func (c *Client) TakeBook(ctx context.Context, bookID, userID string) error {
	return c.do(ctx, call{
		method:     http.MethodPut,
		path:       "/book/take-book",
		body:       loanRequest{BookID: bookID, UserID: userID},
		badRequest: lberrors.CodeBookNotFound,
	}, nil)
}

// ReturnBook closes a user's loan.
func (c *Client) ReturnBook(ctx context.Context, bookID, userID string) error {
	return c.do(ctx, call{
		method:     http.MethodPut,
		path:       "/book/return-book",
		body:       loanRequest{BookID: bookID, UserID: userID},
		badRequest: lberrors.CodeBookNotFound,
	}, nil)
}

// Authors lists every author known to the catalog.
func (c *Client) Authors(ctx context.Context) ([]domain.Author, error) {
	var result []domain.Author
	if err := c.do(ctx, call{method: http.MethodGet, path: "/author/all"}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Genres lists every genre known to the catalog.
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	var result []domain.Genre
	if err := c.do(ctx, call{method: http.MethodGet, path: "/genre/all"}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Genre fetches a single genre by id.
func (c *Client) Genre(ctx context.Context, id string) (domain.Genre, error) {
	var result domain.Genre
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/genre/" + url.PathEscape(id),
		badRequest: lberrors.CodeGenreNotFound,
	}, &result)
	if err != nil {
		return domain.Genre{}, err
	}
	return result, nil
}

// User fetches a user record, including its loans.
func (c *Client) User(ctx context.Context, id string) (domain.User, error) {
	var result domain.User
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "/user/" + url.PathEscape(id),
		badRequest: lberrors.CodeAuthRejected,
	}, &result)
	if err != nil {
		return domain.User{}, err
	}
	return result, nil
}

// registerRequest is the body of the register call.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns the token pair the service
// issues for it, so the caller can sign the new user in right away.
func (c *Client) Register(ctx context.Context, name, email, password string) (domain.TokenPair, error) {
	var result domain.TokenPair
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/authentication/register",
		body:       registerRequest{Name: name, Email: email, Password: password},
		badRequest: lberrors.CodeAuthRejected,
	}, &result)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return result, nil
}

// loginRequest is the body of the login call.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	var result domain.TokenPair
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/authentication/login",
		body:       loginRequest{Email: email, Password: password},
		badRequest: lberrors.CodeAuthRejected,
	}, &result)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return result, nil
}

// RefreshAccessToken exchanges the refresh token for a fresh pair.
func (c *Client) RefreshAccessToken(ctx context.Context, tokens domain.TokenPair) (domain.TokenPair, error) {
	var result domain.TokenPair
	err := c.do(ctx, call{
		method:     http.MethodPost,
		path:       "/authentication/refresh-access-token",
		body:       tokens,
		badRequest: lberrors.CodeAuthRejected,
	}, &result)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return result, nil
}

// ResolveImageURL turns a server-relative image reference into an
// absolute URL. Empty references resolve to the empty string so callers
// can fall back to the bundled placeholder.
func (c *Client) ResolveImageURL(ref string) string {
	if strings.TrimSpace(ref) == "" {
		return ""
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if parsed.IsAbs() {
		return ref
	}
	return c.baseURL.ResolveReference(parsed).String()
}

// UploadImage sends an image to the remote media store and returns the
// reference the server assigned to it. The stored filename is made
// unique so repeated uploads never collide.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	ctx, span := c.tracer.Start(ctx, "api.upload", trace.WithAttributes(
		attribute.String("http.method", http.MethodPost),
		attribute.String("http.route", "/image/upload"),
	))
	defer span.End()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", uniqueFilename(filename))
	if err != nil {
		return "", fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("copy image content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	target := *c.baseURL
	target.Path = "/api/image/upload"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	c.decorate(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.SetStatus(codes.Error, "transport failure")
		return "", lberrors.Wrap(lberrors.CodeNetworkUnreachable, "remote service is unreachable", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(codes.Error, resp.Status)
		return "", c.remoteError(resp, "")
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	if err != nil {
		return "", lberrors.Wrap(lberrors.CodeUnknown, "read response body", err)
	}

	var envelope struct {
		URL  string `json:"url"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.URL != "" {
			return envelope.URL, nil
		}
		if envelope.Path != "" {
			return envelope.Path, nil
		}
	}
	return strings.Trim(strings.TrimSpace(string(raw)), `"`), nil
}

func uniqueFilename(filename string) string {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = filename[idx:]
	}
	return uuid.NewString() + ext
}
