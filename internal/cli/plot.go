package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/pipeline"
)

// plotCommand creates the plot command, the main entry point.
func (c *CLI) plotCommand() *cobra.Command {
	var noCache bool
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw a file as stacked line-chart panels",
		Long: `Draw a file as stacked line-chart panels.

The input is a CSV file, an XLSX workbook or a JSON training log. Every
column becomes a panel; JSON logs plot the chosen phase against a row index
and draw top1 and top5 accuracy in one shared panel.

Without --output the figure is written to graphs/<name>[_<phase>].<format>.

Examples:
  plotplotplot plot -f runs/baseline.log.json -p validate -s settings.json
  plotplotplot plot -f metrics.csv -s settings.toml -o metrics.pdf
  plotplotplot plot -f results.xlsx --sheet epochs --output-format png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlot(cmd.Context(), opts, noCache)
		},
	}

	// Input flags
	cmd.Flags().StringVarP(&opts.InputPath, "filepath", "f", "", "input file (.csv, .json or .xlsx)")
	cmd.Flags().StringVar(&opts.InputFormat, "format", "", "input format: csv, json, xlsx (default: from extension)")
	cmd.Flags().StringVarP(&opts.Phase, "phase", "p", pipeline.DefaultPhase, "log phase for JSON input: train, validate, test")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "worksheet for XLSX input (default: first sheet)")
	cmd.Flags().StringVarP(&opts.SettingsPath, "settings-path", "s", "", "settings file (.json, .toml or .yaml); built-in defaults when empty")

	// Output flags
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "output file; its extension picks the format")
	cmd.Flags().StringVar(&opts.OutputFormat, "output-format", "", "output format when --output is not set: svg (default), png, pdf, eps, jpg, tif")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when a cached figure exists")

	_ = cmd.MarkFlagRequired("filepath")
	_ = cmd.MarkFlagFilename("filepath", "csv", "json", "xlsx")
	_ = cmd.MarkFlagFilename("settings-path", "json", "toml", "yaml", "yml")
	_ = cmd.RegisterFlagCompletionFunc("phase", cobra.FixedCompletions(errors.Phases, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runPlot executes the pipeline and reports the written figure.
func (c *CLI) runPlot(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)
	if opts.SettingsPath == "" {
		printWarning("No settings file given, using the built-in defaults (see '%s init')", appName)
	}

	prog := newProgress(opts.Logger)
	spinner := newSpinnerWithContext(ctx, os.Stderr, fmt.Sprintf("Plotting %s...", pipeline.BaseName(opts.InputPath)))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Plot failed")
		return err
	}
	spinner.Stop()
	prog.done("Finished run", "run", result.RunID, "output", result.Path)

	printSuccess("Plotted %s", pipeline.BaseName(opts.InputPath))
	printFile(result.Path)
	printStats(result.Stats.Panels, result.Stats.Lines, result.CacheHit)
	return nil
}
