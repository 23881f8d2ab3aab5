// Package domain defines the client-side data model for the remote library
// service: books, authors, genres, users, loans, and the bearer token pair.
//
// Every type mirrors the remote JSON contract exactly; the gateway decodes
// responses into these records at the boundary and nothing downstream touches
// raw JSON. Records are value types replaced wholesale on update — the client
// never merges partial server state.
package domain
