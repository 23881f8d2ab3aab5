package domain

import (
	"strings"
	"time"
)

// LoanStatus is the lifecycle state of one loan.
//
// The numeric values match the remote wire encoding: active loans arrive as 0
// and returned loans as 1.
type LoanStatus int

const (
	// LoanActive indicates the book is still with the user.
	LoanActive LoanStatus = 0
	// LoanReturned indicates the book has been handed back.
	LoanReturned LoanStatus = 1
)

// Role names a user's access level on the remote service.
type Role struct {
	Name string `json:"name"`
}

// UserLoan records one borrowing of a book by the user.
//
// Loans are append-only on the client: taking a book adds a record, returning
// one flips Status to LoanReturned. Nothing removes them.
type UserLoan struct {
	ID         string      `json:"id"`
	Book       BookSummary `json:"book"`
	BookID     string      `json:"bookId"`
	DateTaken  time.Time   `json:"dateTaken"`
	ReturnDate time.Time   `json:"returnDate"`
	Status     LoanStatus  `json:"status"`
}

// User is the authenticated account record, replaced wholesale on each fetch.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	UserBooks []UserLoan `json:"userBooks"`
}

// IsZero reports whether the user record is unpopulated.
func (u User) IsZero() bool {
	return strings.TrimSpace(u.ID) == "" && u.Name == "" && u.Email == ""
}

// ActiveLoans returns loans that have not been returned, preserving order.
func (u User) ActiveLoans() []UserLoan {
	loans := make([]UserLoan, 0, len(u.UserBooks))
	for _, loan := range u.UserBooks {
		if loan.Status != LoanReturned {
			loans = append(loans, loan)
		}
	}
	return loans
}

// ArchivedLoans returns loans already returned, preserving order.
func (u User) ArchivedLoans() []UserLoan {
	loans := make([]UserLoan, 0, len(u.UserBooks))
	for _, loan := range u.UserBooks {
		if loan.Status == LoanReturned {
			loans = append(loans, loan)
		}
	}
	return loans
}

// MarkReturned flips the loan for bookID to returned and reports whether a
// matching active loan existed.
func (u *User) MarkReturned(bookID string) bool {
	for i := range u.UserBooks {
		if u.UserBooks[i].Book.ID == bookID && u.UserBooks[i].Status != LoanReturned {
			u.UserBooks[i].Status = LoanReturned
			return true
		}
	}
	return false
}

// TokenPair holds the opaque bearer credentials issued on login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// IsZero reports whether either credential is missing.
func (t TokenPair) IsZero() bool {
	return t.AccessToken == "" || t.RefreshToken == ""
}
