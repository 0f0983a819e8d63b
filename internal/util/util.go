// Package util provides shared helpers for the gomime packages.
package util

// Byteseq represents a generic UTF-8 byte string.
type Byteseq interface {
	~string | ~[]byte
}
