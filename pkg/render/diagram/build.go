package diagram

import (
	"strconv"

	"github.com/protoviz/breadboard/pkg/board"
	"github.com/protoviz/breadboard/pkg/render/diagram/geom"
)

// Palette of the reference board.
const (
	backgroundFill = "#fbfbfb"
	trenchFill     = "#f0f2f5"
	railPlusColor  = "#e34444"
	railMinusColor = "#2a6de0"
	labelFill      = "#333"
	tickStroke     = "#bbb"
	resistorColor  = "#9c642b"
)

const (
	markerFontSize      = 14
	componentLineWidth  = 3
	componentLabelShift = 10 // perpendicular distance of the label from the connector
)

// Build assembles the complete drawing for a layout document under the
// given metrics. Draw order is fixed; later primitives stack on top of
// earlier ones. Build fails with [board.ErrInvalidPad] when a component
// references an unresolvable pad, and renders nothing partial in that
// case. Components of unrecognized types are skipped.
func Build(doc board.Document, m geom.Metrics) (Drawing, error) {
	g := geom.NewGrid(doc.Board, m)
	w, h := g.Size()

	d := Drawing{Width: w, Height: h}
	d.add(Rect{X: 0, Y: 0, W: w, H: h, Fill: backgroundFill})

	if doc.Board.RailTop {
		drawRails(&d, g, true)
	}
	drawColumnNumbers(&d, g)
	drawMiddle(&d, g)
	drawRowLabels(&d, g)
	if doc.Board.RailBottom {
		drawRails(&d, g, false)
	}

	for _, c := range doc.Components {
		if c.Type != board.TypeResistor {
			continue
		}
		if err := drawResistor(&d, g, c); err != nil {
			return Drawing{}, err
		}
	}
	return d, nil
}

// hole builds the rounded-square hole primitive centered on (x, y).
func hole(m geom.Metrics, x, y float64) Hole {
	return Hole{X: x, Y: y, W: m.HoleW, H: m.HoleH, Rx: m.HoleRx}
}

// drawRails emits one rail block: the two colored lines, the +/-
// markers on both ends, and the grouped hole rows.
func drawRails(d *Drawing, g geom.Grid, top bool) {
	m := g.Metrics()
	yPlus, yMinus := g.RailRows(top)
	fieldWidth := float64(g.Board().Columns) * m.CellW

	x1 := m.MarginX - m.RailLineOverhang
	x2 := m.MarginX + fieldWidth + m.RailLineOverhang

	// One line per rail: '+' above its hole row, '-' below its row.
	d.add(
		Line{X1: x1, Y1: yPlus - m.RailLineOffset, X2: x2, Y2: yPlus - m.RailLineOffset,
			Stroke: railPlusColor, StrokeWidth: m.RailLineWidth},
		Line{X1: x1, Y1: yMinus + m.RailLineOffset, X2: x2, Y2: yMinus + m.RailLineOffset,
			Stroke: railMinusColor, StrokeWidth: m.RailLineWidth},
	)

	xLeft := m.MarginX - m.MarkerEdgeOffset
	xRight := m.MarginX + fieldWidth + m.MarkerEdgeOffset
	d.add(
		Text{X: xLeft, Y: yPlus + 4, S: "+", Size: markerFontSize, Fill: railPlusColor},
		Text{X: xLeft, Y: yMinus + 4, S: "–", Size: markerFontSize, Fill: railMinusColor},
		Text{X: xRight, Y: yPlus + 4, S: "+", Size: markerFontSize, Fill: railPlusColor},
		Text{X: xRight, Y: yMinus + 4, S: "–", Size: markerFontSize, Fill: railMinusColor},
	)

	for _, x := range g.RailHoleXs() {
		d.add(hole(m, x, yPlus+m.RailHoleOffset))
	}
	for _, x := range g.RailHoleXs() {
		d.add(hole(m, x, yMinus+m.RailHoleOffset))
	}
}

// drawColumnNumbers emits the rotated numbers just below the top minus
// line and just above the bottom plus line.
func drawColumnNumbers(d *Drawing, g geom.Grid) {
	m := g.Metrics()
	_, topMinus := g.RailRows(true)
	botPlus, _ := g.RailRows(false)

	yTop := topMinus + m.RailLineOffset + m.NumTopOffset
	yBottom := botPlus - m.RailLineOffset - m.NumBottomOffset

	for _, n := range g.ColumnNumbers() {
		label := strconv.Itoa(n.Value)
		d.add(
			Text{X: n.X, Y: yTop, S: label, Size: m.NumFontSize, Fill: labelFill, Rotate: 90},
			Text{X: n.X, Y: yBottom, S: label, Size: m.NumFontSize, Fill: labelFill, Rotate: 90},
		)
	}
}

// drawMiddle emits the two banks of signal holes, the trench between
// them, and the subtle tick marks along the top margin.
func drawMiddle(d *Drawing, g geom.Grid) {
	m := g.Metrics()
	columns := g.Board().Columns

	for row := 0; row < board.BankSize; row++ {
		y := g.RowY(row)
		for c := 1; c <= columns; c++ {
			d.add(hole(m, g.ColumnX(float64(c)), y))
		}
	}

	trenchTop := g.RowY(board.BankSize-1) + m.CellH/2
	d.add(Rect{
		X:    m.MarginX - 24,
		Y:    trenchTop,
		W:    float64(columns)*m.CellW + 48,
		H:    m.TrenchH,
		Rx:   6,
		Fill: trenchFill,
	})

	for row := board.BankSize; row < board.RowCount; row++ {
		y := g.RowY(row)
		for c := 1; c <= columns; c++ {
			d.add(hole(m, g.ColumnX(float64(c)), y))
		}
	}

	for c := m.NumberEvery; c <= columns; c += m.NumberEvery {
		x := g.ColumnX(float64(c))
		d.add(Line{X1: x, Y1: m.MarginY - 4, X2: x, Y2: m.MarginY + 2,
			Stroke: tickStroke, StrokeWidth: 1})
	}
}

// drawRowLabels emits the rotated A-J letters on both sides of the
// hole field.
func drawRowLabels(d *Drawing, g geom.Grid) {
	m := g.Metrics()
	xLeft := m.MarginX - m.RowLabelEdgeOffset
	xRight := m.MarginX + float64(g.Board().Columns)*m.CellW + m.RowLabelEdgeOffset

	for i, row := range board.RowLabels {
		y := g.RowY(i)
		label := string(row)
		d.add(
			Text{X: xLeft, Y: y, S: label, Size: m.RowLabelFontSize, Fill: labelFill, Rotate: 90},
			Text{X: xRight, Y: y, S: label, Size: m.RowLabelFontSize, Fill: labelFill, Rotate: 90},
		)
	}
}
