// Package gomime provides parsing primitives for internet message header
// field values: line unfolding, comma separated list splitting and RFC 2047
// encoded word decoding.
package gomime

import "github.com/ghettovoice/gomime/header"

// Version is the current gomime package version.
var Version = "0.0.0"

// ParseCommaSeparated parses a raw comma separated header field value.
// See [header.ParseCommaSeparated].
func ParseCommaSeparated[T ~string | ~[]byte](s T) header.Value {
	return header.ParseCommaSeparated(s)
}
