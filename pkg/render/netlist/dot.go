package netlist

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/protoviz/breadboard/pkg/board"
	"github.com/protoviz/breadboard/pkg/render"
)

// Options configures netlist diagram rendering.
type Options struct {
	// Detailed lists the member pads inside each net label.
	// When false, only the net name is shown.
	Detailed bool
}

// ToDOT converts a layout document to Graphviz DOT format for netlist
// visualization. The resulting DOT string can be rendered using
// [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Pads on the same column and the same side of the center trench share a
// net node; each recognized component becomes an edge between the nets
// of its pads. Components of unrecognized types are skipped, matching
// the board renderer.
func ToDOT(doc board.Document, opts Options) (string, error) {
	pads := map[string][]string{}
	var edges []string

	for _, c := range doc.Components {
		if c.Type != board.TypeResistor {
			continue
		}
		nets := [2]string{}
		for i, pin := range c.Pins {
			p, err := doc.Board.Pad(pin)
			if err != nil {
				return "", fmt.Errorf("component %s: %w", c.Label(), err)
			}
			net := netName(p)
			nets[i] = net
			pads[net] = append(pads[net], p.String())
		}
		edges = append(edges, fmt.Sprintf("  %q -> %q [label=%q, dir=none];\n", nets[0], nets[1], c.Label()))
	}

	var buf bytes.Buffer
	buf.WriteString("digraph netlist {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=20];\n")
	buf.WriteString("\n")

	for _, net := range sortedNets(pads) {
		label := net
		if opts.Detailed {
			members := dedupe(pads[net])
			label = net + "\n" + strings.Join(members, ", ")
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", net, label)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// netName identifies the electrical net a pad belongs to. Rows A through E
// sit above the trench, F through J below; each column half is one net.
func netName(p board.Pad) string {
	if p.RowIndex() < board.BankSize {
		return fmt.Sprintf("%d.AE", p.Column)
	}
	return fmt.Sprintf("%d.FJ", p.Column)
}

func sortedNets(pads map[string][]string) []string {
	nets := make([]string, 0, len(pads))
	for net := range pads {
		nets = append(nets, net)
	}
	sort.Strings(nets)
	return nets
}

func dedupe(pads []string) []string {
	sort.Strings(pads)
	out := pads[:0]
	for i, p := range pads {
		if i == 0 || p != pads[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
