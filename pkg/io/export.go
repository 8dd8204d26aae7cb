package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/protoviz/breadboard/pkg/board"
)

// WriteJSON encodes a layout document as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing,
// and is the same text embedded in the HTML preview page.
func WriteJSON(doc board.Document, w io.Writer) error {
	railTop, railBottom := doc.Board.RailTop, doc.Board.RailBottom
	out := document{
		Board: boardSection{
			Columns:    doc.Board.Columns,
			RailTop:    &railTop,
			RailBottom: &railBottom,
		},
	}
	for _, c := range doc.Components {
		out.Components = append(out.Components, component{
			Type:  c.Type,
			Pins:  []string{c.Pins[0], c.Pins[1]},
			Value: c.Value,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON returns the indented JSON encoding of a layout document.
func MarshalJSON(doc board.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes a layout document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(doc board.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
