// Package guard decides whether the current session may visit a route
// and where to send it otherwise.
package guard
