package geom

import (
	"github.com/protoviz/breadboard/pkg/board"
)

// Grid binds a board to a set of metrics and precomputes the canvas
// size. The height feeds the bottom rail placement, so it is computed
// once here and threaded through the methods instead of living in
// package state; independent grids never interfere.
type Grid struct {
	board   board.Board
	metrics Metrics
	width   float64
	height  float64
}

// NewGrid constructs the grid for a board under the given metrics.
func NewGrid(b board.Board, m Metrics) Grid {
	g := Grid{board: b, metrics: m}
	g.width = m.MarginX + float64(b.Columns)*m.CellW + m.MarginX

	h := m.MarginY
	if b.RailTop {
		h += railBlockHeight(m)
	}
	h += float64(board.RowCount)*m.CellH + m.TrenchH
	if b.RailBottom {
		h += railBlockHeight(m)
	}
	h += m.MarginY
	g.height = h
	return g
}

// railBlockHeight is the nominal vertical extent reserved for one rail
// block (two hole rows plus the nominal gap) in the canvas size.
func railBlockHeight(m Metrics) float64 {
	return m.CellH*2 + m.RailGap
}

// Board returns the board the grid was built for.
func (g Grid) Board() board.Board { return g.board }

// Metrics returns the metrics in effect.
func (g Grid) Metrics() Metrics { return g.metrics }

// Size returns the canvas dimensions in pixels. Width is affine in the
// column count; height accumulates margins, the optional rail blocks,
// ten row heights, and the trench.
func (g Grid) Size() (w, h float64) {
	return g.width, g.height
}

// ColumnX converts a column position to its x pixel coordinate.
// Fractional columns are allowed; labels use them for nudging.
func (g Grid) ColumnX(col float64) float64 {
	return g.metrics.MarginX + col*g.metrics.CellW
}

// RowY returns the y center of a middle-field row (0 = A … 9 = J).
// Rows below the trench are pushed down by the flat trench height; the
// trench does not scale with row pitch.
func (g Grid) RowY(rowIdx int) float64 {
	m := g.metrics
	y0 := m.MarginY
	if g.board.RailTop {
		y0 += m.CellH*2 + m.TopRailGap + m.TopRailClearance
	}
	if rowIdx < board.BankSize {
		return y0 + float64(rowIdx)*m.CellH
	}
	return y0 + float64(board.BankSize)*m.CellH + m.TrenchH + float64(rowIdx-board.BankSize)*m.CellH
}

// RailRows returns the y centers of the plus and minus hole rows of the
// requested rail block. The top block hangs from the top margin, the
// bottom block is anchored to the precomputed canvas height; each block
// applies its own offset and inter-row gap.
func (g Grid) RailRows(top bool) (yPlus, yMinus float64) {
	m := g.metrics
	var gap, base float64
	if top {
		gap = m.TopRailGap
		base = m.MarginY + m.TopRailOffset
	} else {
		gap = m.BottomRailGap
		base = g.height - m.MarginY - (m.CellH*2 + gap) + m.BottomRailOffset
	}
	yPlus = base + m.CellH*0.5
	yMinus = base + m.CellH*1.5 + gap
	return yPlus, yMinus
}

// PadCoords resolves a pad identifier to its hole center. It fails with
// [board.ErrInvalidPad] when the row letter is unknown or the column is
// unparseable or outside [1, Columns]; the error must reach the caller,
// since a bad pad reference is a user authoring error.
func (g Grid) PadCoords(pad string) (x, y float64, err error) {
	p, err := g.board.Pad(pad)
	if err != nil {
		return 0, 0, err
	}
	return g.ColumnX(float64(p.Column)), g.RowY(p.RowIndex()), nil
}
