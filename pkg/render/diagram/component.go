package diagram

import (
	"math"

	"github.com/protoviz/breadboard/pkg/board"
	"github.com/protoviz/breadboard/pkg/render/diagram/geom"
)

// drawResistor overlays a resistor: a straight connector between the
// two pad centers plus a label at the midpoint, shifted perpendicular
// to the segment so it does not sit on the line. Pad resolution errors
// propagate unchanged.
func drawResistor(d *Drawing, g geom.Grid, c board.Component) error {
	x1, y1, err := g.PadCoords(c.Pins[0])
	if err != nil {
		return err
	}
	x2, y2, err := g.PadCoords(c.Pins[1])
	if err != nil {
		return err
	}

	d.add(Line{X1: x1, Y1: y1, X2: x2, Y2: y2,
		Stroke: resistorColor, StrokeWidth: componentLineWidth})

	nx, ny := labelNormal(x2-x1, y2-y1)
	d.add(Text{
		X:    (x1+x2)/2 + nx*componentLabelShift,
		Y:    (y1+y2)/2 + ny*componentLabelShift,
		S:    c.Label(),
		Size: 11,
		Fill: labelFill,
	})
	return nil
}

// labelNormal returns the unit normal of the segment direction,
// flipped to point upward so labels favor the space above the
// connector. A zero-length segment gets a straight-up normal.
func labelNormal(dx, dy float64) (nx, ny float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, -1
	}
	nx, ny = -dy/length, dx/length
	if ny > 0 {
		nx, ny = -nx, -ny
	}
	return nx, ny
}
