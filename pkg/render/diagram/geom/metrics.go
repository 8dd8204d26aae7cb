package geom

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Metrics holds every spacing constant of the board template, in pixels
// unless noted. The defaults reproduce a full-size 63-column board at
// real proportions; individual values can be overridden from a TOML
// file (see [LoadMetrics]) to fine-tune the rendering against a
// reference photo without recompiling.
type Metrics struct {
	// Core grid pitch.
	CellW   float64 `toml:"cell_w"`   // horizontal spacing between holes
	CellH   float64 `toml:"cell_h"`   // vertical spacing between holes
	MarginX float64 `toml:"margin_x"` // left/right canvas margin
	MarginY float64 `toml:"margin_y"` // top/bottom canvas margin
	RailGap float64 `toml:"rail_gap"` // nominal gap between + and - rail rows, used for canvas sizing
	TrenchH float64 `toml:"trench_h"` // central gap between banks A-E and F-J

	// Hole shape (rounded square).
	HoleW  float64 `toml:"hole_w"`
	HoleH  float64 `toml:"hole_h"`
	HoleRx float64 `toml:"hole_rx"` // corner radius

	// Rail fine-tuning. Top and bottom blocks are tuned independently
	// so nudging one never disturbs the other.
	TopRailOffset     float64 `toml:"top_rail_offset"`     // nudge whole top rail block up/down
	TopRailClearance  float64 `toml:"top_rail_clearance"`  // extra gap between top rails and row A
	BottomRailOffset  float64 `toml:"bottom_rail_offset"`  // nudge bottom rail block
	TopRailGap        float64 `toml:"top_rail_gap"`        // extra center-to-center spacing of the top rail hole rows
	BottomRailGap     float64 `toml:"bottom_rail_gap"`     // same for the bottom block
	RailHoleOffset    float64 `toml:"rail_hole_offset"`    // nudge rail holes up/down
	RailLineOffset    float64 `toml:"rail_line_offset"`    // distance from hole row center to the colored line
	RailLineWidth     float64 `toml:"rail_line_width"`     // stroke width of the colored rail lines
	MarkerEdgeOffset  float64 `toml:"marker_edge_offset"`  // distance of +/- markers from the hole field edges
	RailLineOverhang  float64 `toml:"rail_line_overhang"`  // how far rail lines extend past the hole field

	// Rail hole grouping: clusters of holes with blank columns between.
	RailGroups       int `toml:"rail_groups"`        // number of clusters per rail row
	RailGroupSize    int `toml:"rail_group_size"`    // holes per cluster
	RailGroupGapCols int `toml:"rail_group_gap_cols"` // blank columns between clusters

	// Column numbering (rotated labels near the rails).
	NumberEvery       int     `toml:"number_every"`         // label every Nth column
	NumFontSize       float64 `toml:"num_font_size"`
	NumTopOffset      float64 `toml:"num_top_offset"`       // pixels below the top minus line
	NumBottomOffset   float64 `toml:"num_bottom_offset"`    // pixels above the bottom plus line
	NumberXOffsetCols float64 `toml:"number_x_offset_cols"` // shift label x by whole columns, may be negative

	// Row letters A-J on both sides of the field.
	RowLabelEdgeOffset float64 `toml:"row_label_edge_offset"`
	RowLabelFontSize   float64 `toml:"row_label_font_size"`
}

// DefaultMetrics returns the tuning for the reference full-size board.
func DefaultMetrics() Metrics {
	return Metrics{
		CellW:   18,
		CellH:   18,
		MarginX: 48,
		MarginY: 36,
		RailGap: 8,
		TrenchH: 22,

		HoleW:  6,
		HoleH:  6,
		HoleRx: 2,

		TopRailOffset:    -6,
		TopRailClearance: 12,
		BottomRailOffset: 2,
		TopRailGap:       0,
		BottomRailGap:    0,
		RailHoleOffset:   0,
		RailLineOffset:   6,
		RailLineWidth:    3,
		MarkerEdgeOffset: 10,
		RailLineOverhang: 18,

		RailGroups:       10,
		RailGroupSize:    5,
		RailGroupGapCols: 1,

		NumberEvery:       5,
		NumFontSize:       10,
		NumTopOffset:      10,
		NumBottomOffset:   10,
		NumberXOffsetCols: -1,

		RowLabelEdgeOffset: 10,
		RowLabelFontSize:   11,
	}
}

// LoadMetrics reads metric overrides from a TOML file on top of the
// defaults. Keys absent from the file keep their default values, so a
// tuning file only needs to list what it changes:
//
//	trench_h = 26
//	top_rail_offset = -4
func LoadMetrics(path string) (Metrics, error) {
	m := DefaultMetrics()
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Metrics{}, fmt.Errorf("metrics %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return Metrics{}, fmt.Errorf("metrics %s: %w", path, err)
	}
	return m, nil
}

// Validate checks the structural constraints a usable tuning must meet.
// Offsets may be negative; pitches, counts, and shapes may not.
func (m Metrics) Validate() error {
	if m.CellW <= 0 || m.CellH <= 0 {
		return fmt.Errorf("cell pitch must be positive, got %gx%g", m.CellW, m.CellH)
	}
	if m.RailGroups < 1 || m.RailGroupSize < 1 || m.RailGroupGapCols < 0 {
		return fmt.Errorf("bad rail grouping: %d groups of %d, gap %d",
			m.RailGroups, m.RailGroupSize, m.RailGroupGapCols)
	}
	if m.NumberEvery < 1 {
		return fmt.Errorf("number_every must be >= 1, got %d", m.NumberEvery)
	}
	return nil
}
