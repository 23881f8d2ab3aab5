// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Transport errors
	CodeNetworkUnreachable Code = "NETWORK_UNREACHABLE"
	CodeRemoteRejected     Code = "REMOTE_REJECTED"

	// Lookup errors
	CodeBookNotFound    Code = "BOOK_NOT_FOUND"
	CodeGenreNotFound   Code = "GENRE_NOT_FOUND"
	CodePageNotFound    Code = "PAGE_NOT_FOUND"
	CodeSearchNoMatches Code = "SEARCH_NO_MATCHES"
	CodeFilterNoMatches Code = "FILTER_NO_MATCHES"
	CodeRouteNotFound   Code = "ROUTE_NOT_FOUND"

	// Authentication errors
	CodeAuthRejected   Code = "AUTH_REJECTED"
	CodeAuthRequired   Code = "AUTH_REQUIRED"
	CodeAccessDenied   Code = "ACCESS_DENIED"
	CodeTokenMalformed Code = "TOKEN_MALFORMED"

	// Client-side validation errors
	CodeValidationUsername      Code = "VALIDATION_USERNAME"
	CodeValidationEmail         Code = "VALIDATION_EMAIL"
	CodeValidationPassword      Code = "VALIDATION_PASSWORD"
	CodeValidationPasswordMatch Code = "VALIDATION_PASSWORD_MATCH"
	CodeValidationFieldsEmpty   Code = "VALIDATION_FIELDS_EMPTY"
	CodeValidationBookName      Code = "VALIDATION_BOOK_NAME"
	CodeValidationBookISBN      Code = "VALIDATION_BOOK_ISBN"
	CodeValidationBookGenre     Code = "VALIDATION_BOOK_GENRE"
	CodeValidationBookCount     Code = "VALIDATION_BOOK_COUNT"
	CodeValidationBookAuthors   Code = "VALIDATION_BOOK_AUTHORS"

	// Local storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Kind is the coarse taxonomy bucket a code belongs to.
type Kind int

const (
	// KindUnknown is an unclassified failure.
	KindUnknown Kind = iota
	// KindNetwork is a transport failure where no response arrived.
	KindNetwork
	// KindNotFound is a lookup that matched nothing.
	KindNotFound
	// KindValidation is a client-side form check failure; never sent to the server.
	KindValidation
	// KindAuth is a rejected login or registration.
	KindAuth
	// KindDecode is a malformed bearer token.
	KindDecode
)

// Kind maps a code to its taxonomy bucket.
func (c Code) Kind() Kind {
	switch c {
	case CodeNetworkUnreachable:
		return KindNetwork

	case CodeBookNotFound,
		CodeGenreNotFound,
		CodePageNotFound,
		CodeSearchNoMatches,
		CodeFilterNoMatches,
		CodeRouteNotFound,
		CodeNotFound:
		return KindNotFound

	case CodeValidationUsername,
		CodeValidationEmail,
		CodeValidationPassword,
		CodeValidationPasswordMatch,
		CodeValidationFieldsEmpty,
		CodeValidationBookName,
		CodeValidationBookISBN,
		CodeValidationBookGenre,
		CodeValidationBookCount,
		CodeValidationBookAuthors:
		return KindValidation

	case CodeAuthRejected, CodeAuthRequired, CodeAccessDenied:
		return KindAuth

	case CodeTokenMalformed:
		return KindDecode

	default:
		return KindUnknown
	}
}
