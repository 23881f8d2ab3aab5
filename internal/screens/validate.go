package screens

import (
	"regexp"
	"strings"

	lberrors "github.com/openshelf/librarium/internal/errors"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{3,23}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
)

// ValidateUsername checks the registration user name rules: 4 to 24
// characters, starting with a letter, limited to letters, digits,
// underscores and hyphens.
func ValidateUsername(name string) error {
	if !usernamePattern.MatchString(name) {
		return lberrors.New(lberrors.CodeValidationUsername, "user name is invalid")
	}
	return nil
}

// ValidateEmail checks the address is syntactically plausible.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return lberrors.New(lberrors.CodeValidationEmail, "email is invalid")
	}
	return nil
}

// ValidatePassword checks the registration password rules: 8 to 24
// characters with at least one lower case letter, one upper case letter,
// one digit and one of ! @ # $ %.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 24 {
		return lberrors.New(lberrors.CodeValidationPassword, "password length is out of range")
	}
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune("!@#$%", r):
			hasSpecial = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return lberrors.New(lberrors.CodeValidationPassword, "password is missing a required character class")
	}
	return nil
}

// ValidateRegistration checks a full registration form.
func ValidateRegistration(name, email, password, confirm string) error {
	if err := ValidateUsername(name); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if password != confirm {
		return lberrors.New(lberrors.CodeValidationPasswordMatch, "password confirmation does not match")
	}
	return nil
}

// ValidateSignIn checks the sign-in form: both fields must be present.
func ValidateSignIn(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return lberrors.New(lberrors.CodeValidationFieldsEmpty, "email and password are required")
	}
	return nil
}

// BookDraft is the editor's working copy of a book form.
type BookDraft struct {
	Name        string
	ISBN        string
	Description string
	GenreID     string
	Count       int
	AuthorIDs   []string
	ImageURL    string
}

// Validate checks the editor form rules.
func (d BookDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return lberrors.New(lberrors.CodeValidationBookName, "book title is required")
	}
	if strings.TrimSpace(d.ISBN) == "" {
		return lberrors.New(lberrors.CodeValidationBookISBN, "ISBN is required")
	}
	if strings.TrimSpace(d.GenreID) == "" {
		return lberrors.New(lberrors.CodeValidationBookGenre, "genre is required")
	}
	if d.Count < 1 {
		return lberrors.New(lberrors.CodeValidationBookCount, "copy count must be at least 1")
	}
	if len(d.AuthorIDs) == 0 {
		return lberrors.New(lberrors.CodeValidationBookAuthors, "at least one author is required")
	}
	return nil
}
