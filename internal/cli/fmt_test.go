package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFmtMakesDefaultsExplicit(t *testing.T) {
	c := New(io.Discard, LogInfo)
	path := filepath.Join(t.TempDir(), "layout.json")
	writeLayoutFile(t, path, `{"board":{"columns":30},"components":[{"type":"resistor","pins":["A3","F3"],"value":"220"}]}`)

	if err := c.runFmt(path, ""); err != nil {
		t.Fatalf("runFmt: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read formatted file: %v", err)
	}
	got := string(data)

	// Rail flags default to true on import and must survive the rewrite.
	for _, want := range []string{`"rail_top": true`, `"rail_bottom": true`, `"columns": 30`} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted output missing %s:\n%s", want, got)
		}
	}
	if !strings.Contains(got, "\n  ") {
		t.Error("formatted output should be indented")
	}
}

func TestFmtToSeparateOutput(t *testing.T) {
	c := New(io.Discard, LogInfo)
	dir := t.TempDir()
	in := filepath.Join(dir, "layout.json")
	out := filepath.Join(dir, "canonical.json")
	original := `{"board":{"columns":30}}`
	writeLayoutFile(t, in, original)

	if err := c.runFmt(in, out); err != nil {
		t.Fatalf("runFmt: %v", err)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	if string(data) != original {
		t.Error("input file should be untouched with --output")
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestFmtRejectsInvalidLayout(t *testing.T) {
	c := New(io.Discard, LogInfo)
	path := filepath.Join(t.TempDir(), "layout.json")
	broken := `{"board":{"columns":30},"components":[{"type":"resistor","pins":["Z9","F3"]}]}`
	writeLayoutFile(t, path, broken)

	if err := c.runFmt(path, ""); err == nil {
		t.Fatal("expected error for out-of-range pad")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != broken {
		t.Error("invalid layout must not be rewritten")
	}
}

func TestFmtRoundTrips(t *testing.T) {
	c := New(io.Discard, LogInfo)
	path := filepath.Join(t.TempDir(), "layout.json")
	writeLayoutFile(t, path, validLayout)

	if err := c.runFmt(path, ""); err != nil {
		t.Fatalf("runFmt: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	// Formatting canonical output must be a fixed point.
	if err := c.runFmt(path, ""); err != nil {
		t.Fatalf("runFmt again: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(first) != string(second) {
		t.Error("formatting should be idempotent")
	}
}
