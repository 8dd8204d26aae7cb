package board

import "errors"

// Sentinel errors for layout documents.
var (
	// ErrInvalidPad is returned when a pad reference cannot be resolved:
	// the row letter is not one of A–J, the column does not parse as an
	// integer, or the column lies outside [1, Columns].
	ErrInvalidPad = errors.New("invalid pad")

	// ErrInvalidBoard is returned when the board description itself is
	// malformed (column count below 1).
	ErrInvalidBoard = errors.New("invalid board")
)
