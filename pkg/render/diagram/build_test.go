package diagram

import (
	"errors"
	"testing"

	"github.com/protoviz/breadboard/pkg/board"
	"github.com/protoviz/breadboard/pkg/render/diagram/geom"
)

func fullDoc(components ...board.Component) board.Document {
	return board.Document{
		Board:      board.Board{Columns: 63, RailTop: true, RailBottom: true},
		Components: components,
	}
}

func TestBuildHoleCounts(t *testing.T) {
	d, err := Build(fullDoc(), geom.DefaultMetrics())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// 63 columns x 10 rows in the middle field, plus 4 rail rows
	// (plus and minus, top and bottom) of 50 grouped holes each.
	want := 63*10 + 4*50
	if got := d.Holes(); got != want {
		t.Errorf("hole count = %d, want %d", got, want)
	}
}

func TestBuildWithoutRails(t *testing.T) {
	doc := board.Document{Board: board.Board{Columns: 63}}
	d, err := Build(doc, geom.DefaultMetrics())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got := d.Holes(); got != 63*10 {
		t.Errorf("hole count = %d, want %d", got, 63*10)
	}
}

func TestBuildBackgroundFirst(t *testing.T) {
	d, err := Build(fullDoc(), geom.DefaultMetrics())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	bg, ok := d.Primitives[0].(Rect)
	if !ok {
		t.Fatalf("first primitive = %T, want Rect", d.Primitives[0])
	}
	if bg.W != d.Width || bg.H != d.Height {
		t.Errorf("background = %vx%v, want %vx%v", bg.W, bg.H, d.Width, d.Height)
	}
}

func TestBuildResistorOverlay(t *testing.T) {
	m := geom.DefaultMetrics()
	doc := fullDoc(board.Component{
		Type: board.TypeResistor, Pins: [2]string{"A5", "E5"}, Value: "220",
	})

	d, err := Build(doc, m)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	g := geom.NewGrid(doc.Board, m)
	x1, y1, _ := g.PadCoords("A5")
	x2, y2, _ := g.PadCoords("E5")

	var connectors []Line
	for _, p := range d.Primitives {
		if l, ok := p.(Line); ok && l.Stroke == resistorColor {
			connectors = append(connectors, l)
		}
	}
	if len(connectors) != 1 {
		t.Fatalf("connector count = %d, want 1", len(connectors))
	}
	c := connectors[0]
	if c.X1 != x1 || c.Y1 != y1 || c.X2 != x2 || c.Y2 != y2 {
		t.Errorf("connector = (%v,%v)-(%v,%v), want (%v,%v)-(%v,%v)",
			c.X1, c.Y1, c.X2, c.Y2, x1, y1, x2, y2)
	}

	// The component overlay stacks on top: the connector comes after
	// every hole.
	lastHole, connectorIdx := -1, -1
	for i, p := range d.Primitives {
		switch v := p.(type) {
		case Hole:
			lastHole = i
		case Line:
			if v.Stroke == resistorColor {
				connectorIdx = i
			}
		}
	}
	if connectorIdx < lastHole {
		t.Error("component overlay should be drawn after the board")
	}
}

func TestBuildInvalidPadAborts(t *testing.T) {
	doc := fullDoc(board.Component{Type: board.TypeResistor, Pins: [2]string{"K1", "A1"}})

	d, err := Build(doc, geom.DefaultMetrics())
	if !errors.Is(err, board.ErrInvalidPad) {
		t.Fatalf("Build() error = %v, want ErrInvalidPad", err)
	}
	if len(d.Primitives) != 0 {
		t.Error("failed build should not return a partial drawing")
	}
}

func TestBuildSkipsUnknownComponents(t *testing.T) {
	doc := fullDoc(board.Component{Type: "capacitor", Pins: [2]string{"Z1", "Z2"}})

	d, err := Build(doc, geom.DefaultMetrics())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for _, p := range d.Primitives {
		if l, ok := p.(Line); ok && l.Stroke == resistorColor {
			t.Fatal("unknown component type should not be drawn")
		}
	}
}

func TestLabelNormal(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		nx, ny float64
	}{
		{"horizontal", 10, 0, 0, -1},
		{"vertical", 0, 10, -1, 0},
		{"degenerate", 0, 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny := labelNormal(tt.dx, tt.dy)
			if nx != tt.nx || ny != tt.ny {
				t.Errorf("labelNormal(%v, %v) = (%v, %v), want (%v, %v)",
					tt.dx, tt.dy, nx, ny, tt.nx, tt.ny)
			}
		})
	}
}
