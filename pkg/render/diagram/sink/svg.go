package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/protoviz/breadboard/pkg/render/diagram"
)

const (
	holeFill   = "#222"
	fontFamily = "monospace"
)

// RenderSVG serializes a drawing as a standalone SVG document. The
// viewBox matches the pixel coordinate space 1:1, and primitives are
// emitted in drawing order so the sequence defines stacking.
func RenderSVG(d diagram.Drawing) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		d.Width, d.Height, d.Width, d.Height)

	for _, p := range d.Primitives {
		renderPrimitive(&buf, p)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderPrimitive(buf *bytes.Buffer, p diagram.Primitive) {
	switch v := p.(type) {
	case diagram.Hole:
		fmt.Fprintf(buf, `  <rect x="%g" y="%g" width="%g" height="%g" rx="%g" ry="%g" fill="%s"/>`+"\n",
			v.X-v.W/2, v.Y-v.H/2, v.W, v.H, v.Rx, v.Rx, holeFill)
	case diagram.Line:
		fmt.Fprintf(buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`+"\n",
			v.X1, v.Y1, v.X2, v.Y2, v.Stroke, v.StrokeWidth)
	case diagram.Rect:
		fmt.Fprintf(buf, `  <rect x="%g" y="%g" width="%g" height="%g" rx="%g" fill="%s"/>`+"\n",
			v.X, v.Y, v.W, v.H, v.Rx, v.Fill)
	case diagram.Text:
		renderText(buf, v)
	}
}

func renderText(buf *bytes.Buffer, t diagram.Text) {
	anchor := t.Anchor
	if anchor == "" {
		anchor = "middle"
	}
	if t.Rotate != 0 {
		fmt.Fprintf(buf, `  <text x="%g" y="%g" font-family="%s" font-size="%g" fill="%s" text-anchor="%s" dominant-baseline="middle" transform="rotate(%g %g %g)">%s</text>`+"\n",
			t.X, t.Y, fontFamily, t.Size, t.Fill, anchor, t.Rotate, t.X, t.Y, escapeXML(t.S))
		return
	}
	fmt.Fprintf(buf, `  <text x="%g" y="%g" font-family="%s" font-size="%g" fill="%s" text-anchor="%s">%s</text>`+"\n",
		t.X, t.Y, fontFamily, t.Size, t.Fill, anchor, escapeXML(t.S))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
