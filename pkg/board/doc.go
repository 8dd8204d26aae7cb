// Package board defines the data model for a solderless breadboard layout.
//
// A layout document describes the board itself (column count and which
// power rails are present) plus an ordered list of placed components.
// Pads address individual holes in the middle field by row letter and
// column number ("A5", "J63"); the ten rows are split into two banks of
// five (A–E above the trench, F–J below it), mirroring the electrical
// discontinuity of a physical board.
//
// The types here are plain values: a Board is immutable once read, pads
// are derived on demand, and components are never mutated after parsing.
// Geometry lives in [github.com/protoviz/breadboard/pkg/render/diagram/geom];
// this package only validates identifiers and document structure.
//
// # Errors
//
// Pad resolution failures are reported with the sentinel [ErrInvalidPad],
// wrapped with the offending pad string. Use errors.Is to detect it:
//
//	if _, err := board.ParsePad("K1"); errors.Is(err, board.ErrInvalidPad) {
//	    // bad row letter
//	}
package board
