package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/protoviz/breadboard/pkg/board"
	"github.com/protoviz/breadboard/pkg/cache"
	boardio "github.com/protoviz/breadboard/pkg/io"
	"github.com/protoviz/breadboard/pkg/render/diagram"
	"github.com/protoviz/breadboard/pkg/render/diagram/geom"
	"github.com/protoviz/breadboard/pkg/render/diagram/sink"
	"github.com/protoviz/breadboard/pkg/render/netlist"
)

const (
	typeBoard   = "board"   // to-scale board diagram
	typeNetlist = "netlist" // Graphviz connectivity graph

	formatHTML = "html"
	formatSVG  = "svg"
	formatJSON = "json"
	formatPNG  = "png"
	formatPDF  = "pdf"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file path (or base path for multiple outputs)
	vizTypes    []string // visualization types: "board", "netlist"
	formats     []string // output formats: "html", "svg", "json", "png", "pdf"
	metricsPath string   // optional TOML metrics override file
	detailed    bool     // list member pads in netlist nodes
	noCache     bool     // bypass the artifact cache
}

// renderCommand creates the render command for generating board artifacts.
// It supports multiple visualization types (board, netlist) and output
// formats (HTML, SVG, JSON, PNG, PDF).
func (c *CLI) renderCommand() *cobra.Command {
	var vizTypesStr, formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a breadboard layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.vizTypes = parseList(vizTypesStr, typeBoard)
			opts.formats = parseList(formatsStr, formatHTML)
			if err := validateVizTypes(opts.vizTypes); err != nil {
				return err
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): board (default), netlist (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), svg, json, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.metricsPath, "metrics", "", "TOML file overriding the drawing metrics")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "list member pads in netlist nodes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// validVizTypes is the set of supported visualization types.
var validVizTypes = map[string]bool{typeBoard: true, typeNetlist: true}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	formatHTML: true, formatSVG: true, formatJSON: true, formatPNG: true, formatPDF: true,
}

// validateVizTypes checks that all requested visualization types are valid.
func validateVizTypes(types []string) error {
	for _, t := range types {
		if !validVizTypes[t] {
			return fmt.Errorf("invalid type: %s (must be 'board' or 'netlist')", t)
		}
	}
	return nil
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'html', 'svg', 'json', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., blinky_board.svg, blinky_netlist.svg).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// loadMetrics resolves the metrics in effect: defaults, optionally
// overridden by a TOML file.
func loadMetrics(path string) (geom.Metrics, error) {
	if path == "" {
		return geom.DefaultMetrics(), nil
	}
	return geom.LoadMetrics(path)
}

// runRender loads the layout, renders every requested type/format
// combination, and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	c.Logger.Infof("Rendering %s", input)

	doc, err := boardio.ImportJSON(input)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	c.Logger.Infof("Loaded layout: %d columns, %d components", doc.Board.Columns, len(doc.Components))

	m, err := loadMetrics(opts.metricsPath)
	if err != nil {
		return err
	}

	r := renderer{
		cli:   c,
		doc:   doc,
		m:     m,
		opts:  opts,
		store: newCache(opts.noCache),
	}
	defer r.store.Close()
	if err := r.keys(); err != nil {
		return err
	}

	if len(opts.vizTypes) == 1 && len(opts.formats) == 1 {
		return r.renderSingle(ctx, opts.vizTypes[0], opts.formats[0], input)
	}
	return r.renderMultiple(ctx, input)
}

// renderer carries the per-invocation render state: the loaded document,
// the metrics in effect, and the hashes that key the artifact cache.
type renderer struct {
	cli   *CLI
	doc   board.Document
	m     geom.Metrics
	opts  *renderOpts
	store cache.Cache

	docHash     string
	metricsHash string
}

// keys computes the content hashes for cache addressing. The document is
// re-marshaled canonically so formatting differences in the input file
// don't fragment the cache.
func (r *renderer) keys() error {
	docJSON, err := boardio.MarshalJSON(r.doc)
	if err != nil {
		return err
	}
	metricsJSON, err := json.Marshal(r.m)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	r.docHash = cache.Hash(docJSON)
	r.metricsHash = cache.Hash(metricsJSON)
	return nil
}

// renderSingle renders a single visualization type and format to a single output file.
// If the output flag is empty, the output path is derived from the input file name.
func (r *renderer) renderSingle(ctx context.Context, vizType, format, input string) error {
	data, cached, err := r.renderArtifact(ctx, vizType, format)
	if err != nil {
		return err
	}
	r.cli.Logger.Debugf("Generated %s: %d bytes", format, len(data))

	outputPath := r.opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "." + format
	}

	if err := writeArtifact(outputPath, data); err != nil {
		return err
	}

	printSuccess("Rendered %s %s", vizType, format)
	printStats(r.doc.Board.Columns, len(r.doc.Components), cached)
	printFile(outputPath)
	return nil
}

// renderMultiple renders all requested visualization type/format combinations to separate files.
// File names include the visualization type when multiple types are requested.
func (r *renderer) renderMultiple(ctx context.Context, input string) error {
	base := basePath(r.opts.output, input)
	p := newProgress(r.cli.Logger)

	count := 0
	for _, vizType := range r.opts.vizTypes {
		for _, format := range r.opts.formats {
			data, cached, err := r.renderArtifact(ctx, vizType, format)
			if errors.Is(err, errSkipFormat) {
				r.cli.Logger.Debugf("Skipping %s/%s (unsupported combination)", vizType, format)
				continue
			}
			if err != nil {
				return fmt.Errorf("%s/%s: %w", vizType, format, err)
			}

			var path string
			if len(r.opts.vizTypes) == 1 {
				path = fmt.Sprintf("%s.%s", base, format)
			} else {
				path = fmt.Sprintf("%s_%s.%s", base, vizType, format)
			}
			if err := writeArtifact(path, data); err != nil {
				return err
			}
			if cached {
				r.cli.Logger.Debugf("Cache hit for %s/%s", vizType, format)
			}
			printFile(path)
			count++
		}
	}

	p.done(fmt.Sprintf("Rendered %d artifacts", count))
	return nil
}

// errSkipFormat is a sentinel error indicating an unsupported format/visualization combination.
var errSkipFormat = fmt.Errorf("skip unsupported format")

// renderArtifact produces one artifact, consulting the cache first.
// The boolean return reports whether the artifact came from the cache.
func (r *renderer) renderArtifact(ctx context.Context, vizType, format string) ([]byte, bool, error) {
	key := cache.ArtifactKey(r.docHash, r.metricsHash, vizType+"."+format)
	if data, ok, err := r.store.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}

	data, err := r.render(ctx, vizType, format)
	if err != nil {
		return nil, false, err
	}

	if err := r.store.Set(ctx, key, data); err != nil {
		r.cli.Logger.Debugf("Cache write failed: %v", err)
	}
	return data, false, nil
}

// render dispatches to the appropriate renderer based on vizType.
func (r *renderer) render(ctx context.Context, vizType, format string) ([]byte, error) {
	switch vizType {
	case typeNetlist:
		return r.renderNetlist(ctx, format)
	case typeBoard:
		return r.renderBoard(ctx, format)
	default:
		return nil, fmt.Errorf("unknown visualization type: %s", vizType)
	}
}

// renderNetlist generates a connectivity diagram using Graphviz.
// It supports SVG, PDF, and PNG formats; HTML and JSON return errSkipFormat.
func (r *renderer) renderNetlist(ctx context.Context, format string) ([]byte, error) {
	logger := r.cli.Logger
	logger.Info("Generating netlist diagram")
	dot, err := netlist.ToDOT(r.doc, netlist.Options{Detailed: r.opts.detailed})
	if err != nil {
		return nil, err
	}

	switch format {
	case formatSVG:
		logger.Info("Rendering netlist SVG")
		return netlist.RenderSVG(dot)
	case formatPDF:
		logger.Info("Rendering netlist PDF")
		return r.convertWithSpinner(ctx, format, func() ([]byte, error) { return netlist.RenderPDF(dot) })
	case formatPNG:
		logger.Info("Rendering netlist PNG")
		return r.convertWithSpinner(ctx, format, func() ([]byte, error) { return netlist.RenderPNG(dot, 2.0) })
	case formatHTML, formatJSON:
		return nil, errSkipFormat // preview page and layout export only make sense for the board
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// renderBoard generates the to-scale board diagram in the requested format.
func (r *renderer) renderBoard(ctx context.Context, format string) ([]byte, error) {
	logger := r.cli.Logger

	d, err := diagram.Build(r.doc, r.m)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Drawing assembled: %d primitives, %d holes", len(d.Primitives), d.Holes())

	switch format {
	case formatHTML:
		logger.Info("Rendering HTML preview")
		return sink.RenderHTML(d, r.doc)
	case formatSVG:
		logger.Info("Rendering board SVG")
		return sink.RenderSVG(d), nil
	case formatJSON:
		logger.Info("Rendering drawing as JSON")
		return sink.RenderJSON(d, sink.WithJSONIndent())
	case formatPNG:
		logger.Info("Rendering board PNG")
		return r.convertWithSpinner(ctx, format, func() ([]byte, error) { return sink.RenderPNG(d) })
	case formatPDF:
		logger.Info("Rendering board PDF")
		return r.convertWithSpinner(ctx, format, func() ([]byte, error) { return sink.RenderPDF(d) })
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// convertWithSpinner runs an rsvg-convert backed render with a spinner,
// since the external conversion can take a moment on large boards.
func (r *renderer) convertWithSpinner(ctx context.Context, format string, fn func() ([]byte, error)) ([]byte, error) {
	s := newSpinnerWithContext(ctx, fmt.Sprintf("converting to %s", format))
	s.Start()
	data, err := fn()
	s.Stop()
	if s.Cancelled() {
		printError("Conversion interrupted")
		return nil, ctx.Err()
	}
	return data, err
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeArtifact writes data to path (or stdout when path is empty).
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	return nil
}
