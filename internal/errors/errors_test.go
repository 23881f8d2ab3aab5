package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeBookNotFound, "isbn 123 unknown")
	wrapped := fmt.Errorf("fetch book: %w", err)

	if !stderrors.Is(wrapped, New(CodeBookNotFound, "other message")) {
		t.Fatalf("expected code match through wrapping")
	}
	if stderrors.Is(wrapped, New(CodeGenreNotFound, "")) {
		t.Fatalf("different codes must not match")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(CodeNetworkUnreachable, "request failed", cause)

	if !stderrors.Is(err, cause) {
		t.Fatalf("expected cause in error chain")
	}
}

func TestGetCodeFallsBackToUnknown(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("got %s, want %s", got, CodeUnknown)
	}
	if got := GetCode(nil); got != CodeUnknown {
		t.Fatalf("got %s for nil error", got)
	}
}

func TestKindClassification(t *testing.T) {
	tests := []struct {
		code Code
		want Kind
	}{
		{CodeNetworkUnreachable, KindNetwork},
		{CodeBookNotFound, KindNotFound},
		{CodeGenreNotFound, KindNotFound},
		{CodePageNotFound, KindNotFound},
		{CodeValidationPassword, KindValidation},
		{CodeAuthRejected, KindAuth},
		{CodeTokenMalformed, KindDecode},
		{CodeRemoteRejected, KindUnknown},
		{CodeUnknown, KindUnknown},
	}
	for _, tc := range tests {
		if got := tc.code.Kind(); got != tc.want {
			t.Fatalf("%s: got kind %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestGetHTTPStatus(t *testing.T) {
	err := Remote(CodeRemoteRejected, "boom", 503)
	if got := GetHTTPStatus(fmt.Errorf("call: %w", err)); got != 503 {
		t.Fatalf("got %d, want 503", got)
	}
	if got := GetHTTPStatus(stderrors.New("plain")); got != 0 {
		t.Fatalf("got %d, want 0 for non-domain error", got)
	}
}

func TestLocalizeUsesCatalogAndMetadata(t *testing.T) {
	err := New(CodeBookNotFound, "isbn 123 unknown")

	if got := Localize(err, "en-US"); got != "Book not found" {
		t.Fatalf("en-US: got %q", got)
	}
	if got := Localize(err, "ru"); got != "Книга не найдена" {
		t.Fatalf("ru: got %q", got)
	}
}

func TestLocalizePrefersServerMessage(t *testing.T) {
	err := WithMetadata(CodeRemoteRejected, "remote rejected", map[string]string{
		"Message": "Seat quota exceeded",
	})
	if got := Localize(err, "en-US"); got != "Seat quota exceeded" {
		t.Fatalf("got %q, want server message", got)
	}
}

func TestLocalizeUnknownError(t *testing.T) {
	if got := Localize(stderrors.New("disk on fire"), "en-US"); got != "An unexpected error occurred" {
		t.Fatalf("got %q", got)
	}
}
