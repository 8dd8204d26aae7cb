package geom

// RailHoleXs returns the x centers of one rail row's holes, laid out as
// RailGroups clusters of RailGroupSize holes with RailGroupGapCols
// blank columns between clusters. The cluster block is pixel-centered
// across the board's hole field, so the rail stays symmetric regardless
// of how the hole count relates to the column count.
func (g Grid) RailHoleXs() []float64 {
	m := g.metrics

	groupCols := m.RailGroups*m.RailGroupSize + (m.RailGroups-1)*m.RailGroupGapCols
	fieldWidth := float64(g.board.Columns) * m.CellW
	groupsWidth := float64(groupCols) * m.CellW
	left := m.MarginX + (fieldWidth-groupsWidth)/2

	xs := make([]float64, 0, m.RailGroups*m.RailGroupSize)
	x := left
	for cluster := 0; cluster < m.RailGroups; cluster++ {
		for i := 0; i < m.RailGroupSize; i++ {
			xs = append(xs, x+float64(i+1)*m.CellW)
		}
		// Advance past the cluster and the blank gap; nothing is drawn
		// in the gap columns.
		x += float64(m.RailGroupSize+m.RailGroupGapCols) * m.CellW
	}
	return xs
}
