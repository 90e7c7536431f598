package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartblocks/pkg/chart"
	"github.com/matzehuels/chartblocks/pkg/pipeline"
)

// inspectCommand creates the inspect command, which lists the blocks of an
// input without rendering anything.
func (c *CLI) inspectCommand() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:               "inspect [file]",
		Short:             "List the chart blocks of a file",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeInputFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return c.runInspect(cmd.Context(), name, sheet)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet to read from .xlsx inputs (default: first sheet)")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, name, sheet string) error {
	src, err := c.openInput(name, sheet)
	if err != nil {
		return err
	}

	var rows [][]string
	runner := pipeline.NewRunner(pipeline.WithLogger(loggerFromContext(ctx)))
	err = runner.Blocks(ctx, src, func(blk *chart.Block) error {
		rows = append(rows, []string{
			fmt.Sprintf("%d-%d", blk.FirstLine, blk.LastLine),
			blk.Mode().String(),
			blk.OutputName,
			strconv.Itoa(len(blk.Series)),
			strconv.Itoa(blk.Samples()),
		})
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, StyleTitle.Render(src.Name()))
	fmt.Fprintln(c.out, blocksTable(rows))
	c.printInfo("%s blocks", StyleNumber.Render(strconv.Itoa(len(rows))))
	return nil
}

// blocksTable renders one row per block.
func blocksTable(rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Lines", "Mode", "Output", "Series", "Samples").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}
