package netlist

import (
	"strings"
	"testing"

	"github.com/protoviz/breadboard/pkg/board"
)

func testDoc() board.Document {
	return board.Document{
		Board: board.Board{Columns: 63, RailTop: true, RailBottom: true},
		Components: []board.Component{
			{Type: board.TypeResistor, Pins: [2]string{"A3", "F3"}, Value: "220"},
			{Type: board.TypeResistor, Pins: [2]string{"C3", "F12"}, Value: "1k"},
		},
	}
}

func TestToDOTCollapsesNets(t *testing.T) {
	dot, err := ToDOT(testDoc(), Options{})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	// A3 and C3 share the upper half of column 3.
	if n := strings.Count(dot, `"3.AE" [`); n != 1 {
		t.Errorf("net 3.AE declared %d times, want 1", n)
	}
	for _, net := range []string{"3.AE", "3.FJ", "12.FJ"} {
		if !strings.Contains(dot, `"`+net+`" [`) {
			t.Errorf("missing net node %s", net)
		}
	}
	if strings.Contains(dot, `"3.AE" [label="3.AE\n`) {
		t.Error("member pads listed without Detailed")
	}
}

func TestToDOTEdges(t *testing.T) {
	dot, err := ToDOT(testDoc(), Options{})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	if !strings.Contains(dot, `"3.AE" -> "3.FJ" [label="220`) {
		t.Error("missing edge for first resistor")
	}
	if !strings.Contains(dot, `"3.AE" -> "12.FJ" [label="1k`) {
		t.Error("missing edge for second resistor")
	}
	if !strings.Contains(dot, "dir=none") {
		t.Error("component edges should be undirected")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot, err := ToDOT(testDoc(), Options{Detailed: true})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	if !strings.Contains(dot, "A3, C3") {
		t.Error("detailed net label should list member pads")
	}
}

func TestToDOTSkipsUnknownComponents(t *testing.T) {
	doc := testDoc()
	doc.Components = append(doc.Components,
		// Unrecognized types pass import untouched, pinned or not;
		// the netlist must tolerate them like the board renderer does.
		board.Component{Type: "annotation", Value: "decorative"},
		board.Component{Type: "capacitor", Pins: [2]string{"B7", "G7"}, Value: "100n"},
	)

	dot, err := ToDOT(doc, Options{})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	if strings.Contains(dot, "decorative") || strings.Contains(dot, "100n") {
		t.Error("unrecognized component types should not produce edges")
	}
	if strings.Contains(dot, `"7.AE"`) {
		t.Error("unrecognized component pads should not produce nets")
	}
	if n := strings.Count(dot, "->"); n != 2 {
		t.Errorf("edge count = %d, want 2", n)
	}
}

func TestToDOTInvalidPad(t *testing.T) {
	doc := testDoc()
	doc.Components[0].Pins[1] = "Z9"

	if _, err := ToDOT(doc, Options{}); err == nil {
		t.Fatal("expected error for invalid pad")
	}
}

func TestNetName(t *testing.T) {
	tests := []struct {
		pad  string
		want string
	}{
		{"A1", "1.AE"},
		{"E1", "1.AE"},
		{"F1", "1.FJ"},
		{"J63", "63.FJ"},
	}
	for _, tt := range tests {
		p, err := board.ParsePad(tt.pad)
		if err != nil {
			t.Fatalf("ParsePad(%q): %v", tt.pad, err)
		}
		if got := netName(p); got != tt.want {
			t.Errorf("netName(%s) = %s, want %s", tt.pad, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00">rest</svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}
	if !strings.Contains(out, "rest</svg>") {
		t.Error("body dropped")
	}
}
