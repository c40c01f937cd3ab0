// Package boarderr defines the sentinel error kinds shared across the
// codec, store, and engine packages (spec §7).
package boarderr

import "errors"

var (
	// ErrMalformedHex is returned when a hex identifier is not exactly 64
	// lowercase hex characters.
	ErrMalformedHex = errors.New("malformed hex identifier")

	// ErrMalformedBlob is returned when a blob is not 32 bytes or contains
	// a forbidden cell code.
	ErrMalformedBlob = errors.New("malformed blob")

	// ErrMalformedRecord is returned when a store record is missing its
	// magic byte or is truncated.
	ErrMalformedRecord = errors.New("malformed store record")
)
