// Package assets bundles static files shipped with the client.
package assets

import _ "embed"

// PlaceholderCover is shown when a book carries no image reference.
//
//go:embed placeholder.svg
var PlaceholderCover []byte

// PlaceholderCoverName is the filename used when the placeholder is
// written to disk or served locally.
const PlaceholderCoverName = "placeholder.svg"
