package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/protoviz/breadboard/pkg/board"
)

type document struct {
	Board      boardSection `json:"board"`
	Components []component  `json:"components,omitempty"`
}

type boardSection struct {
	Columns    int   `json:"columns"`
	RailTop    *bool `json:"rail_top,omitempty"`
	RailBottom *bool `json:"rail_bottom,omitempty"`
}

type component struct {
	Type  string   `json:"type"`
	Pins  []string `json:"pins"`
	Value string   `json:"value,omitempty"`
}

// ReadJSON decodes a layout document from r.
//
// The board's rail flags default to true when omitted. ReadJSON returns
// an error if the JSON is malformed, the board violates its invariants
// (columns < 1), or a recognized component does not reference exactly
// two pins. Pad identifiers are not resolved here; see [board.Board.Pad].
//
// The returned document is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (board.Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return board.Document{}, fmt.Errorf("decode: %w", err)
	}

	b := board.Board{
		Columns:    data.Board.Columns,
		RailTop:    railDefault(data.Board.RailTop),
		RailBottom: railDefault(data.Board.RailBottom),
	}
	if err := b.Validate(); err != nil {
		return board.Document{}, err
	}

	doc := board.Document{Board: b}
	for i, c := range data.Components {
		comp := board.Component{Type: c.Type, Value: c.Value}
		if c.Type == board.TypeResistor && len(c.Pins) != 2 {
			return board.Document{}, fmt.Errorf("component %d: resistor needs exactly 2 pins, got %d", i, len(c.Pins))
		}
		for j, pin := range c.Pins {
			if j > 1 {
				break
			}
			comp.Pins[j] = pin
		}
		doc.Components = append(doc.Components, comp)
	}
	return doc, nil
}

// railDefault resolves an optional rail flag; absent means present.
func railDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// ImportJSON reads a layout document from the file at path.
//
// It opens the file, decodes it with [ReadJSON], and closes it. Errors
// wrap the underlying cause with the file path for context.
func ImportJSON(path string) (board.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return board.Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	doc, err := ReadJSON(f)
	if err != nil {
		return board.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
