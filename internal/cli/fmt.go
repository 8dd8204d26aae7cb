package cli

import (
	"github.com/spf13/cobra"

	boardio "github.com/protoviz/breadboard/pkg/io"
)

// fmtCommand creates the fmt command for canonicalizing layout files.
func (c *CLI) fmtCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite a layout file in canonical form",
		Long: `Fmt reads a layout file, validates it, and writes it back as indented
JSON with all defaults made explicit, including the rail flags. With
--output the result goes to a new file; otherwise the input is
rewritten in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFmt(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result here instead of in place")

	return cmd
}

// runFmt canonicalizes a layout file. The document is validated before
// anything is written, so a broken layout is never clobbered.
func (c *CLI) runFmt(input, output string) error {
	doc, err := boardio.ImportJSON(input)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	if output == "" {
		output = input
	}
	if err := boardio.ExportJSON(doc, output); err != nil {
		return err
	}

	printSuccess("Formatted layout: %d columns, %d components", doc.Board.Columns, len(doc.Components))
	printFile(output)
	return nil
}
