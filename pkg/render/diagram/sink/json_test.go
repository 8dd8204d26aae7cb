package sink

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testDrawing())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Width      float64          `json:"width"`
		Height     float64          `json:"height"`
		Primitives []map[string]any `json:"primitives"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Width != 200 || out.Height != 100 {
		t.Errorf("dimensions = %gx%g, want 200x100", out.Width, out.Height)
	}
	if len(out.Primitives) != 4 {
		t.Fatalf("got %d primitives, want 4", len(out.Primitives))
	}

	wantTypes := []string{"rect", "hole", "line", "text"}
	for i, want := range wantTypes {
		if got := out.Primitives[i]["type"]; got != want {
			t.Errorf("primitive %d type = %v, want %s", i, got, want)
		}
	}
}

func TestRenderJSONFieldOmission(t *testing.T) {
	data, err := RenderJSON(testDrawing())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Primitives []map[string]any `json:"primitives"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	line := out.Primitives[2]
	if _, ok := line["x"]; ok {
		t.Error("line should not carry rect coordinates")
	}
	if line["x1"] != 10.0 || line["x2"] != 30.0 {
		t.Errorf("line endpoints = %v..%v", line["x1"], line["x2"])
	}

	text := out.Primitives[3]
	if _, ok := text["rotate"]; ok {
		t.Error("unrotated text should omit rotate")
	}
	if text["text"] != "5" {
		t.Errorf("text content = %v, want 5", text["text"])
	}
}

func TestRenderJSONIndent(t *testing.T) {
	plain, err := RenderJSON(testDrawing())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	indented, err := RenderJSON(testDrawing(), WithJSONIndent())
	if err != nil {
		t.Fatalf("RenderJSON indented: %v", err)
	}

	if strings.Contains(string(plain), "\n  ") {
		t.Error("plain output should not be indented")
	}
	if !strings.Contains(string(indented), "\n  ") {
		t.Error("indented output should contain indentation")
	}
	if len(indented) <= len(plain) {
		t.Error("indented output should be longer")
	}
}
