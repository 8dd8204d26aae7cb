// Package sink exports a finished board drawing to output formats.
//
// Available sinks:
//
//   - [RenderSVG]: the vector drawing itself, coordinates 1:1 pixels
//   - [RenderHTML]: a standalone preview page embedding the SVG and a
//     pretty-printed copy of the layout document
//   - [RenderJSON]: the primitive list for downstream tooling
//   - [RenderPNG], [RenderPDF]: raster/print conversion of the SVG via
//     rsvg-convert
//
// Sinks only serialize; all geometry decisions happen in
// [github.com/protoviz/breadboard/pkg/render/diagram].
package sink
