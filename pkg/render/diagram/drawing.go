package diagram

// Primitive is one drawable element. Primitives are write-once: a
// drawing appends them in draw order and never mutates them.
type Primitive interface {
	primitive()
}

// Hole is a breadboard hole, drawn as a rounded square centered on
// (X, Y). Width, height, and corner radius come from the metrics.
type Hole struct {
	X, Y float64
	W, H float64
	Rx   float64
}

// Line is a straight stroke between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
}

// Rect is an axis-aligned, optionally rounded rectangle.
type Rect struct {
	X, Y, W, H float64
	Rx         float64
	Fill       string
}

// Text is a text label anchored at (X, Y). Rotate is in degrees around
// the anchor; 0 means unrotated.
type Text struct {
	X, Y   float64
	S      string
	Size   float64
	Anchor string // "middle", "start", "end"; empty means middle
	Fill   string
	Rotate float64
}

func (Hole) primitive() {}
func (Line) primitive() {}
func (Rect) primitive() {}
func (Text) primitive() {}

// Drawing is the finished board image: canvas size plus the ordered
// primitive sequence. Order determines visual stacking.
type Drawing struct {
	Width      float64
	Height     float64
	Primitives []Primitive
}

func (d *Drawing) add(ps ...Primitive) {
	d.Primitives = append(d.Primitives, ps...)
}

// Holes returns the number of hole primitives in the drawing.
func (d Drawing) Holes() int {
	n := 0
	for _, p := range d.Primitives {
		if _, ok := p.(Hole); ok {
			n++
		}
	}
	return n
}
