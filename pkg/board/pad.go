package board

import (
	"fmt"
	"strconv"
	"strings"
)

// RowLabels are the ten middle-field row letters, top to bottom.
// Rows A–E form the bank above the trench, F–J the bank below it.
var RowLabels = [10]byte{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J'}

// RowCount is the number of middle-field rows.
const RowCount = len(RowLabels)

// BankSize is the number of rows per bank.
const BankSize = RowCount / 2

// Pad addresses a single hole in the middle field.
type Pad struct {
	Row    byte // row letter, one of RowLabels
	Column int  // 1-based column number
}

// RowIndex returns the zero-based row index (A=0 … J=9).
func (p Pad) RowIndex() int {
	return int(p.Row - 'A')
}

// String returns the canonical pad identifier, e.g. "A5".
func (p Pad) String() string {
	return fmt.Sprintf("%c%d", p.Row, p.Column)
}

// ParsePad parses a pad identifier like "A5" or "j63". The identifier
// is trimmed and upper-cased before parsing. ParsePad checks the row
// letter and that the column is a positive integer; the upper column
// bound depends on the board and is enforced by [Board.Pad].
func ParsePad(s string) (Pad, error) {
	id := strings.ToUpper(strings.TrimSpace(s))
	if len(id) < 2 {
		return Pad{}, fmt.Errorf("%w: %q", ErrInvalidPad, s)
	}
	row := id[0]
	if row < 'A' || row > 'J' {
		return Pad{}, fmt.Errorf("%w: %q: unknown row letter %q", ErrInvalidPad, s, string(row))
	}
	col, err := strconv.Atoi(id[1:])
	if err != nil {
		return Pad{}, fmt.Errorf("%w: %q: bad column number", ErrInvalidPad, s)
	}
	if col < 1 {
		return Pad{}, fmt.Errorf("%w: %q: column %d out of range", ErrInvalidPad, s, col)
	}
	return Pad{Row: row, Column: col}, nil
}

// Pad parses and validates a pad identifier against the board,
// enforcing the column range [1, Columns].
func (b Board) Pad(s string) (Pad, error) {
	p, err := ParsePad(s)
	if err != nil {
		return Pad{}, err
	}
	if p.Column > b.Columns {
		return Pad{}, fmt.Errorf("%w: %q: column %d out of range [1, %d]", ErrInvalidPad, s, p.Column, b.Columns)
	}
	return p, nil
}
