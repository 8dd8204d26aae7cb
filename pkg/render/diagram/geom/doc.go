// Package geom implements the breadboard grid geometry model.
//
// # Overview
//
// Everything drawn on a breadboard sits on a fixed-pitch grid: signal
// holes at whole column/row positions, power-rail holes in centered
// clusters, labels nudged by fractional columns. This package maps
// logical board positions to pixel coordinates:
//
//  1. Metrics ([Metrics]): every spacing constant, hand-tunable and
//     loadable from TOML.
//  2. Grid ([Grid]): a Board/Metrics pair with the canvas size computed
//     once at construction.
//  3. Coordinate functions: [Grid.ColumnX], [Grid.RowY],
//     [Grid.RailRows], [Grid.PadCoords], [Grid.RailHoleXs],
//     [Grid.ColumnNumbers].
//
// # Purity
//
// Every method is a pure function of the grid's board and metrics; the
// canvas height is part of the Grid value rather than shared state, so
// rails, holes, and labels stay geometrically consistent no matter the
// order or subset in which they are computed, and independent grids can
// be used concurrently.
//
// # Model
//
// Vertically the canvas accumulates: top margin, optional top rail
// block, five rows (bank A–E), the trench, five rows (bank F–J),
// optional bottom rail block, bottom margin. The trench is a flat gap
// independent of row pitch, mirroring the physical board. Rail blocks
// carry their own fine-tuning offsets and inter-row gaps so visual
// nudging never touches the shared constants.
package geom
