package geom

// ColumnNumber is one rotated numeric label placed near the rails.
// Positions walk left to right (columns N, 2N, …) while the displayed
// values count down (start, start-N, …). The mirrored convention comes
// from the reference hardware and is preserved deliberately.
type ColumnNumber struct {
	Column int     // logical column the label sits at
	Value  int     // displayed number
	X      float64 // pixel x, including the configured column nudge
}

// ColumnNumbers returns the labels for one rail line, left to right.
// start is the largest multiple of NumberEvery not exceeding the column
// count; label i sits at column (i+1)*NumberEvery and shows start minus
// i*NumberEvery.
func (g Grid) ColumnNumbers() []ColumnNumber {
	m := g.metrics
	n := m.NumberEvery
	start := (g.board.Columns / n) * n
	count := start / n

	nums := make([]ColumnNumber, 0, count)
	for i := 0; i < count; i++ {
		col := (i + 1) * n
		nums = append(nums, ColumnNumber{
			Column: col,
			Value:  start - i*n,
			X:      g.ColumnX(float64(col) + m.NumberXOffsetCols),
		})
	}
	return nums
}
