package geom

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMetricsValid(t *testing.T) {
	if err := DefaultMetrics().Validate(); err != nil {
		t.Fatalf("DefaultMetrics().Validate() error: %v", err)
	}
}

func TestLoadMetricsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.toml")
	contents := "trench_h = 30\ntop_rail_offset = -2\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMetrics(path)
	if err != nil {
		t.Fatalf("LoadMetrics() error: %v", err)
	}

	if m.TrenchH != 30 {
		t.Errorf("TrenchH = %v, want 30", m.TrenchH)
	}
	if m.TopRailOffset != -2 {
		t.Errorf("TopRailOffset = %v, want -2", m.TopRailOffset)
	}
	// Untouched keys keep their defaults.
	if m.CellW != DefaultMetrics().CellW {
		t.Errorf("CellW = %v, want default %v", m.CellW, DefaultMetrics().CellW)
	}
}

func TestLoadMetricsRejectsBadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.toml")
	if err := os.WriteFile(path, []byte("cell_w = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMetrics(path); err == nil {
		t.Error("LoadMetrics() should reject non-positive pitch")
	}
}

func TestMetricsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Metrics)
	}{
		{"zero cell width", func(m *Metrics) { m.CellW = 0 }},
		{"zero groups", func(m *Metrics) { m.RailGroups = 0 }},
		{"negative gap", func(m *Metrics) { m.RailGroupGapCols = -1 }},
		{"zero numbering", func(m *Metrics) { m.NumberEvery = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMetrics()
			tt.mutate(&m)
			if err := m.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}
