package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/callirhoe/pkg/pipeline"
)

// renderCommand creates the render command for drawing calendars to files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags   calendarFlags
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render [[MONTH[-MONTH2|:SPAN]] YEAR] FILE",
		Short: "Render a calendar to SVG, PNG or PDF",
		Long: `Render a calendar to SVG, PNG or PDF.

The output format follows the extension of FILE. PDF output holds every page
in one document; SVG and PNG output with several pages is written to
numbered files (cal_01.svg, cal_02.svg, ...).

Without MONTH and YEAR the current year is rendered. MONTH may be a single
month, a range (3-8) or a start and a span (11:4); 0 stands for the current
month or year.

Results are cached locally for faster subsequent runs.`,
		Example: `  callirhoe render 2025 cal.pdf
  callirhoe render 3-8 2025 summer.svg --rows 2
  callirhoe render 0:3 0 next.png -s bw -H holidays.yaml`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args[:len(args)-1])
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[len(args)-1], opts, noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender renders opts to output and reports the files written.
func (c *CLI) runRender(ctx context.Context, output string, opts pipeline.Options, noCache bool) error {
	format, err := pipeline.FormatOf(output)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	opts.Logger = logger
	logRequest(logger, opts)
	prog := newProgress(logger)

	paths, result, err := runner.RenderFile(ctx, output, opts)
	if err != nil {
		return err
	}

	prog.done("Rendered", "months", result.Stats.Months, "pages", result.Stats.Pages, "format", format)
	printSuccess("Calendar rendered")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Months, result.Stats.Pages, result.CacheHit)
	return nil
}
