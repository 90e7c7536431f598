package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartblocks/pkg/pipeline"
	"github.com/matzehuels/chartblocks/pkg/render/pie"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outputDir string // directory for <output_name>.svg files
	sheet     string // worksheet for .xlsx inputs
}

// renderCommand creates the render command, the main entry point: it exports
// one SVG per block of the input.
//
// Without a file argument the user is asked for one. A name that does not
// exist falls back to the configured default input.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Export one SVG per chart block",
		Long: `Render every chart block of a CSV or XLSX file to <output_name>.svg.

Without a file argument the input file name is prompted for. If the named file
does not exist the configured default input is used instead.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeInputFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.renderArgs(cmd.Context(), args, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func (o *renderOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.outputDir, "output-dir", "o", "", "directory for exported charts (default from config, else .)")
	cmd.Flags().StringVar(&o.sheet, "sheet", "", "worksheet to read from .xlsx inputs (default: first sheet)")
	_ = cmd.RegisterFlagCompletionFunc("output-dir", completeDir)
}

// renderArgs renders the file named by args, prompting for it when args is
// empty.
func (c *CLI) renderArgs(ctx context.Context, args []string, opts renderOpts) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	} else {
		answer, err := c.promptInput(ctx, c.Config.Input.Default)
		if err != nil {
			return err
		}
		name = answer
	}
	if opts.outputDir == "" {
		opts.outputDir = c.Config.Output.Dir
	}
	return c.runRender(ctx, name, opts)
}

func (c *CLI) runRender(ctx context.Context, name string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	src, err := c.openInput(name, opts.sheet)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(
		pipeline.WithOutputDir(opts.outputDir),
		pipeline.WithLogger(logger),
		pipeline.WithReporter(consoleReporter{c}),
	)
	result, err := runner.Run(ctx, src)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d charts from %s", result.Stats.Blocks, src.Name()))
	return nil
}

// consoleReporter prints slice shares and exported files as they happen.
type consoleReporter struct {
	c *CLI
}

func (r consoleReporter) Slice(output string, s pie.Slice) {
	r.c.printDetail("%s slice %d (%s): %d%%", output, s.Index, s.Color, s.Percent)
}

func (r consoleReporter) Exported(path string) {
	r.c.printSuccess("Exported file: %s", StyleValue.Render(path))
}
