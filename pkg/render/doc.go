// Package render provides visualization rendering for breadboard layouts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms board
// layout documents into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Board diagrams (in [diagram] subpackage)
//   - Netlist diagrams (in [netlist] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// board and netlist renderers.
//
//	svg := sink.RenderSVG(drawing)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Board Diagrams
//
// The [diagram] subpackage draws a solderless breadboard to scale: power
// rails, the terminal field split by the center trench, column numbers,
// row labels, and component overlays.
//
// Key diagram subpackages:
//   - [diagram/geom]: Grid coordinate computation
//   - [diagram/sink]: Output formats (SVG, HTML, JSON, PNG, PDF)
//
// # Netlist Diagrams
//
// The [netlist] subpackage renders the electrical connectivity of a layout
// as a directed graph using Graphviz. Pads appear as nodes connected by
// component edges.
//
//	dot := netlist.ToDOT(doc, netlist.Options{})
//	svg, err := netlist.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [diagram]: github.com/protoviz/breadboard/pkg/render/diagram
// [diagram/geom]: github.com/protoviz/breadboard/pkg/render/diagram/geom
// [diagram/sink]: github.com/protoviz/breadboard/pkg/render/diagram/sink
// [netlist]: github.com/protoviz/breadboard/pkg/render/netlist
package render
