package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	boardio "github.com/protoviz/breadboard/pkg/io"
	"github.com/protoviz/breadboard/pkg/render/diagram/geom"
)

// inspectCommand creates the inspect command for examining layout files.
func (c *CLI) inspectCommand() *cobra.Command {
	var metricsPath string

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show a summary of a breadboard layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], metricsPath)
		},
	}

	cmd.Flags().StringVar(&metricsPath, "metrics", "", "TOML file overriding the drawing metrics")

	return cmd
}

// runInspect prints the layout summary: board parameters, canvas size,
// and every component with its resolved pad coordinates.
func runInspect(input, metricsPath string) error {
	doc, err := boardio.ImportJSON(input)
	if err != nil {
		return err
	}
	m, err := loadMetrics(metricsPath)
	if err != nil {
		return err
	}

	grid := geom.NewGrid(doc.Board, m)
	w, h := grid.Size()

	fmt.Println(StyleTitle.Render(input))
	printNewline()
	printKeyValue("columns", fmt.Sprintf("%d", doc.Board.Columns))
	printKeyValue("rails", railSummary(doc.Board.RailTop, doc.Board.RailBottom))
	printKeyValue("canvas", fmt.Sprintf("%.0f x %.0f px", w, h))
	printKeyValue("components", fmt.Sprintf("%d", len(doc.Components)))

	if len(doc.Components) == 0 {
		return nil
	}

	printNewline()
	for i, comp := range doc.Components {
		printInfo("%s %s", comp.Type, StyleValue.Render(comp.Label()))
		for _, pin := range comp.Pins {
			x, y, err := grid.PadCoords(pin)
			if err != nil {
				printWarning("component %d: %v", i, err)
				continue
			}
			printDetail("%-4s %s (%.0f, %.0f)", pin, iconArrow, x, y)
		}
	}
	return nil
}

// railSummary describes which power rails are present.
func railSummary(top, bottom bool) string {
	switch {
	case top && bottom:
		return "top + bottom"
	case top:
		return "top only"
	case bottom:
		return "bottom only"
	default:
		return "none"
	}
}
