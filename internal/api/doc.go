// Package api is the gateway client for the remote library service. It
// owns request construction, bearer authorization, response decoding and
// the mapping of transport and remote failures onto domain error codes.
package api
