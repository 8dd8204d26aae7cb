package sink

import (
	"encoding/json"
	"fmt"

	"github.com/protoviz/breadboard/pkg/render/diagram"
)

// JSONOption configures the JSON export.
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
}

// WithJSONIndent enables indented output.
func WithJSONIndent() JSONOption {
	return func(r *jsonRenderer) { r.indent = true }
}

// jsonOutput is the serialized drawing.
type jsonOutput struct {
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Primitives []jsonPrimitive `json:"primitives"`
}

// jsonPrimitive flattens the primitive variants behind a type
// discriminator; fields irrelevant to a given type are omitted.
type jsonPrimitive struct {
	Type string `json:"type"`

	X  *float64 `json:"x,omitempty"`
	Y  *float64 `json:"y,omitempty"`
	W  *float64 `json:"w,omitempty"`
	H  *float64 `json:"h,omitempty"`
	Rx *float64 `json:"rx,omitempty"`

	X1 *float64 `json:"x1,omitempty"`
	Y1 *float64 `json:"y1,omitempty"`
	X2 *float64 `json:"x2,omitempty"`
	Y2 *float64 `json:"y2,omitempty"`

	Text   string   `json:"text,omitempty"`
	Size   *float64 `json:"size,omitempty"`
	Rotate *float64 `json:"rotate,omitempty"`
	Anchor string   `json:"anchor,omitempty"`

	Fill        string   `json:"fill,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"stroke_width,omitempty"`
}

// RenderJSON exports the drawing's primitive list for downstream
// tooling. The output preserves drawing order.
func RenderJSON(d diagram.Drawing, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      d.Width,
		Height:     d.Height,
		Primitives: make([]jsonPrimitive, 0, len(d.Primitives)),
	}
	for _, p := range d.Primitives {
		out.Primitives = append(out.Primitives, toJSONPrimitive(p))
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal drawing: %w", err)
	}
	return data, nil
}

func toJSONPrimitive(p diagram.Primitive) jsonPrimitive {
	f := func(v float64) *float64 { return &v }
	switch v := p.(type) {
	case diagram.Hole:
		return jsonPrimitive{Type: "hole", X: f(v.X), Y: f(v.Y), W: f(v.W), H: f(v.H), Rx: f(v.Rx)}
	case diagram.Line:
		return jsonPrimitive{Type: "line", X1: f(v.X1), Y1: f(v.Y1), X2: f(v.X2), Y2: f(v.Y2),
			Stroke: v.Stroke, StrokeWidth: f(v.StrokeWidth)}
	case diagram.Rect:
		return jsonPrimitive{Type: "rect", X: f(v.X), Y: f(v.Y), W: f(v.W), H: f(v.H), Rx: f(v.Rx), Fill: v.Fill}
	case diagram.Text:
		jp := jsonPrimitive{Type: "text", X: f(v.X), Y: f(v.Y), Text: v.S, Size: f(v.Size),
			Anchor: v.Anchor, Fill: v.Fill}
		if v.Rotate != 0 {
			jp.Rotate = f(v.Rotate)
		}
		return jp
	}
	return jsonPrimitive{Type: "unknown"}
}
