package board

import "fmt"

// DefaultColumns is the column count of the standard full-size board.
const DefaultColumns = 63

// Board describes the breadboard geometry-defining parameters.
// It is constructed once from the layout document and not modified
// afterwards; every coordinate in a render derives from it.
type Board struct {
	// Columns is the number of signal columns in the middle field.
	// Must be at least 1.
	Columns int

	// RailTop and RailBottom control whether the power-rail blocks
	// along the respective edges are present. Both default to true
	// when absent from the document.
	RailTop    bool
	RailBottom bool
}

// Validate checks the board invariants.
func (b Board) Validate() error {
	if b.Columns < 1 {
		return fmt.Errorf("%w: columns must be >= 1, got %d", ErrInvalidBoard, b.Columns)
	}
	return nil
}

// Component types recognized by the renderer. Unrecognized types are
// skipped silently at render time; validating them is the authoring
// tool's responsibility.
const (
	TypeResistor = "resistor"
)

// Component is a placed part referencing exactly two pads.
// It carries no electrical meaning; the renderer draws it as a
// connector line between the two pad centers plus an optional label.
type Component struct {
	Type  string
	Pins  [2]string
	Value string
}

// Label returns the display label for the component: its value if set,
// otherwise a single-letter type marker.
func (c Component) Label() string {
	if c.Value != "" {
		return c.Value
	}
	return "R"
}

// Document is a complete layout description: the board plus the ordered
// component list. It is the unit read from disk and passed to renderers.
type Document struct {
	Board      Board
	Components []Component
}

// Validate checks the board and resolves every recognized component's
// pad references against it. The first failure is returned, wrapped
// with the component index for context.
func (d Document) Validate() error {
	if err := d.Board.Validate(); err != nil {
		return err
	}
	for i, c := range d.Components {
		if c.Type != TypeResistor {
			continue
		}
		for _, pin := range c.Pins {
			if _, err := d.Board.Pad(pin); err != nil {
				return fmt.Errorf("component %d: %w", i, err)
			}
		}
	}
	return nil
}
