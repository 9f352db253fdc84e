package codec

import "errors"

var (
	// ErrInvalidTable indicates a decoded table breaks the allocation invariants.
	ErrInvalidTable = errors.New("codec: invalid table")

	// ErrUnsupportedVersion indicates a table record from an unknown format version.
	ErrUnsupportedVersion = errors.New("codec: unsupported table version")

	// ErrInvalidGroups indicates a malformed group record.
	ErrInvalidGroups = errors.New("codec: invalid groups")
)
