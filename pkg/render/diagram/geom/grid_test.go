package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/protoviz/breadboard/pkg/board"
)

const eps = 1e-9

func fullBoard(columns int) board.Board {
	return board.Board{Columns: columns, RailTop: true, RailBottom: true}
}

func TestSizeAffineInColumns(t *testing.T) {
	m := DefaultMetrics()

	// Width is an affine function of the column count: two margins plus
	// pitch per column. It must be strictly increasing.
	prev := 0.0
	for c := 1; c <= 100; c++ {
		g := NewGrid(fullBoard(c), m)
		w, _ := g.Size()
		want := m.MarginX + float64(c)*m.CellW + m.MarginX
		if math.Abs(w-want) > eps {
			t.Fatalf("width(%d) = %v, want %v", c, w, want)
		}
		if w <= prev {
			t.Fatalf("width(%d) = %v not increasing (prev %v)", c, w, prev)
		}
		prev = w
	}
}

func TestSizeHeightAccumulation(t *testing.T) {
	m := DefaultMetrics()
	middle := 10*m.CellH + m.TrenchH
	railBlock := 2*m.CellH + m.RailGap

	tests := []struct {
		name  string
		board board.Board
		want  float64
	}{
		{"both rails", fullBoard(63), 2*m.MarginY + 2*railBlock + middle},
		{"top only", board.Board{Columns: 63, RailTop: true}, 2*m.MarginY + railBlock + middle},
		{"no rails", board.Board{Columns: 63}, 2*m.MarginY + middle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := NewGrid(tt.board, m).Size()
			if math.Abs(h-tt.want) > eps {
				t.Errorf("height = %v, want %v", h, tt.want)
			}
		})
	}
}

func TestColumnXConstantPitch(t *testing.T) {
	g := NewGrid(fullBoard(63), DefaultMetrics())

	for c := 0; c < 63; c++ {
		d := g.ColumnX(float64(c+1)) - g.ColumnX(float64(c))
		if math.Abs(d-g.Metrics().CellW) > eps {
			t.Fatalf("pitch at column %d = %v, want %v", c, d, g.Metrics().CellW)
		}
	}
}

func TestPadCoordsRowSpacing(t *testing.T) {
	m := DefaultMetrics()
	g := NewGrid(fullBoard(63), m)

	_, yA, err := g.PadCoords("A1")
	if err != nil {
		t.Fatalf("PadCoords(A1) error: %v", err)
	}
	_, yE, _ := g.PadCoords("E1")
	_, yF, _ := g.PadCoords("F1")

	// Within a bank: plain row pitch.
	if got, want := yE-yA, 4*m.CellH; math.Abs(got-want) > eps {
		t.Errorf("E1-A1 = %v, want %v", got, want)
	}
	// Across the trench: five pitches plus the flat trench height.
	if got, want := yF-yA, 5*m.CellH+m.TrenchH; math.Abs(got-want) > eps {
		t.Errorf("F1-A1 = %v, want %v", got, want)
	}
}

func TestPadCoordsInvalid(t *testing.T) {
	g := NewGrid(fullBoard(63), DefaultMetrics())

	for _, pad := range []string{"K1", "A0", "A64", "5A", ""} {
		if _, _, err := g.PadCoords(pad); !errors.Is(err, board.ErrInvalidPad) {
			t.Errorf("PadCoords(%q) error = %v, want ErrInvalidPad", pad, err)
		}
	}
}

func TestRailHoleXs(t *testing.T) {
	m := DefaultMetrics()
	g := NewGrid(fullBoard(63), m)
	xs := g.RailHoleXs()

	// 10 clusters of 5 holes.
	if len(xs) != 50 {
		t.Fatalf("hole count = %d, want 50", len(xs))
	}

	for i := 1; i < len(xs); i++ {
		d := xs[i] - xs[i-1]
		if i%m.RailGroupSize == 0 {
			// Cluster boundary: one blank column, so centers sit two
			// pitches apart.
			if math.Abs(d-2*m.CellW) > eps {
				t.Errorf("gap after hole %d = %v, want %v", i-1, d, 2*m.CellW)
			}
		} else if math.Abs(d-m.CellW) > eps {
			t.Errorf("pitch after hole %d = %v, want %v", i-1, d, m.CellW)
		}
		if d < m.CellW-eps {
			t.Errorf("holes %d,%d closer than one pitch: %v", i-1, i, d)
		}
	}

	// The cluster block is centered across the hole field.
	first, last := xs[0], xs[len(xs)-1]
	fieldLeft := m.MarginX
	fieldRight := m.MarginX + 63*m.CellW
	if math.Abs((first-fieldLeft)-(fieldRight-last)) > m.CellW+eps {
		t.Errorf("cluster block not centered: left slack %v, right slack %v",
			first-fieldLeft, fieldRight-last)
	}
}

func TestColumnNumbers(t *testing.T) {
	g := NewGrid(fullBoard(63), DefaultMetrics())
	nums := g.ColumnNumbers()

	// 63 columns, every 5th: positions 5..60, values 60..5.
	if len(nums) != 12 {
		t.Fatalf("label count = %d, want 12", len(nums))
	}
	for i, n := range nums {
		wantCol := (i + 1) * 5
		wantVal := 60 - i*5
		if n.Column != wantCol {
			t.Errorf("label %d column = %d, want %d", i, n.Column, wantCol)
		}
		if n.Value != wantVal {
			t.Errorf("label %d value = %d, want %d", i, n.Value, wantVal)
		}
		// Positions increase left to right even though values decrease.
		if i > 0 && nums[i].X <= nums[i-1].X {
			t.Errorf("label %d x = %v not increasing", i, n.X)
		}
	}
}

func TestRailRowsIndependentTuning(t *testing.T) {
	m := DefaultMetrics()
	g := NewGrid(fullBoard(63), m)

	topPlus, topMinus := g.RailRows(true)
	botPlus, botMinus := g.RailRows(false)

	if topMinus-topPlus != m.CellH+m.TopRailGap {
		t.Errorf("top rail row spread = %v, want %v", topMinus-topPlus, m.CellH+m.TopRailGap)
	}
	if botMinus-botPlus != m.CellH+m.BottomRailGap {
		t.Errorf("bottom rail row spread = %v, want %v", botMinus-botPlus, m.CellH+m.BottomRailGap)
	}
	if botPlus <= topMinus {
		t.Error("bottom rail block should sit below the top block")
	}

	// Nudging the bottom block moves only the bottom block.
	m2 := m
	m2.BottomRailOffset += 5
	g2 := NewGrid(fullBoard(63), m2)
	tp2, _ := g2.RailRows(true)
	bp2, _ := g2.RailRows(false)
	if tp2 != topPlus {
		t.Error("bottom offset must not move the top block")
	}
	if math.Abs((bp2-botPlus)-5) > eps {
		t.Errorf("bottom block moved %v, want 5", bp2-botPlus)
	}
}

func TestPadCoordsMatchesRowAndColumn(t *testing.T) {
	g := NewGrid(fullBoard(63), DefaultMetrics())

	x, y, err := g.PadCoords("F12")
	if err != nil {
		t.Fatalf("PadCoords(F12) error: %v", err)
	}
	if x != g.ColumnX(12) {
		t.Errorf("x = %v, want %v", x, g.ColumnX(12))
	}
	if y != g.RowY(5) {
		t.Errorf("y = %v, want %v", y, g.RowY(5))
	}
}
