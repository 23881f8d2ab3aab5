// Package session holds the signed-in user and token pair for the
// lifetime of the process and mirrors both into persistent storage.
package session
