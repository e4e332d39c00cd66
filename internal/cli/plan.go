package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/callirhoe/pkg/pipeline"
	"github.com/matzehuels/callirhoe/pkg/render/layout"
)

// planCommand creates the plan command, which previews the page layout of a
// calendar without rendering it.
func (c *CLI) planCommand() *cobra.Command {
	var flags calendarFlags

	cmd := &cobra.Command{
		Use:   "plan [[MONTH[-MONTH2|:SPAN]] YEAR]",
		Short: "Show the page grid and draw order of a calendar",
		Long: `Show the page grid and draw order of a calendar.

Plan accepts the same arguments and flags as render, resolves the grid shape
and the pages, and prints them without drawing anything. Errors that would
abort a render (empty range, unresolvable grid, paper too small) are reported
the same way.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args)
			if err != nil {
				return err
			}
			return c.runPlan(cmd.Context(), args, opts)
		},
	}

	flags.register(cmd)

	return cmd
}

func (c *CLI) runPlan(ctx context.Context, args []string, opts pipeline.Options) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)
	logRequest(opts.Logger, opts)
	doc, err := runner.Plan(ctx, opts)
	if err != nil {
		return err
	}

	p := doc.Plan
	fmt.Println(StyleTitle.Render("Calendar plan"))
	printKeyValue("Months", strconv.Itoa(p.Months()))
	printKeyValue("Grid", fmt.Sprintf("%d rows × %d cols", p.Rows, p.Cols))
	printKeyValue("Grid order", string(p.GridOrder))
	printKeyValue("Z-order", string(p.ZOrder))
	printKeyValue("Pages", strconv.Itoa(len(doc.Pages)))

	for _, pg := range doc.Pages {
		printNewline()
		printInfo("Page %d", pg.Index+1)
		fmt.Println(planTable(pg))
	}

	printNewline()
	render := append([]string{appName, "render"}, args...)
	printNextStep("Render", strings.Join(append(render, "cal.pdf"), " "))
	return nil
}

// planTable renders the boxes of a page in paint order.
func planTable(pg layout.PageLayout) string {
	rows := make([][]string, len(pg.Boxes))
	for i, b := range pg.Boxes {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			b.Month.String(),
			strconv.Itoa(b.Pos.Row + 1),
			strconv.Itoa(b.Pos.Col + 1),
			b.Box.Mode,
			strconv.Itoa(b.Box.Rows),
			fmt.Sprintf("%.0f×%.0f", b.Box.Rect.W, b.Box.Rect.H),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Draw", "Month", "Row", "Col", "Mode", "Rows", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 1:
				return cellStyle.Foreground(colorCyan)
			default:
				return cellStyle.Foreground(colorWhite)
			}
		})
	return t.Render()
}
