package packhash

import "errors"

var (
	// ErrOverflowDetected indicates a checked hash saw a letter more often
	// than the table was sized for.
	ErrOverflowDetected = errors.New("packhash: field overflow detected")

	// ErrNilTable indicates a hasher was requested for a nil table.
	ErrNilTable = errors.New("packhash: nil allocation table")
)
