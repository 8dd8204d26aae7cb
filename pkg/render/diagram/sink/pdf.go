package sink

import (
	"github.com/protoviz/breadboard/pkg/render"
	"github.com/protoviz/breadboard/pkg/render/diagram"
)

// RenderPDF renders the drawing as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(d diagram.Drawing) ([]byte, error) {
	return render.ToPDF(RenderSVG(d))
}
