// Package netlist renders board layouts as electrical connectivity diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// nets (groups of electrically connected pads) appear as boxes connected by
// component edges. It's a supplement to the board diagram for cases where
// the circuit topology matters more than physical placement.
//
// # Usage
//
// Convert a layout document to DOT format, then render to SVG:
//
//	dot, err := netlist.ToDOT(doc, netlist.Options{Detailed: false})
//	svg, err := netlist.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := netlist.RenderPDF(dot)
//	png, err := netlist.RenderPNG(dot, 2.0)  // 2x scale
//
// # Nets
//
// On a solderless breadboard, the five holes of a column on one side of
// the center trench form a single electrical net. [ToDOT] collapses pads
// accordingly: A3 and C3 map to the same net node, while F3 lands on the
// opposite side of the trench and gets its own.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package netlist
