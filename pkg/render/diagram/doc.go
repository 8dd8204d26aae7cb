// Package diagram assembles a breadboard layout document into a
// drawing of graphic primitives.
//
// # Overview
//
// A [Drawing] is an ordered list of primitives (holes, lines, rounded
// rectangles, text) plus the canvas size. [Build] produces it in a
// single pass with a fixed draw order that doubles as z-stacking:
//
//	background → top rails → column numbers → middle-field holes and
//	trench → row labels → bottom rails → component overlays
//
// No primitive depends on another's rendering; geometry is computed
// once via [geom.Grid] and then emitted once. Component overlays
// resolve their pad references through the same grid, so a bad pad
// aborts the build with [board.ErrInvalidPad]; there is no partial
// render.
//
// # Subpackages
//
//   - [geom]: The grid geometry model mapping board positions to pixels.
//   - [sink]: Output generators (SVG, HTML preview, JSON, PNG, PDF).
//
// [geom]: github.com/protoviz/breadboard/pkg/render/diagram/geom
// [sink]: github.com/protoviz/breadboard/pkg/render/diagram/sink
package diagram
