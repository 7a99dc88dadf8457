package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stuckscan/internal/calibrate"
	"stuckscan/internal/corpus"
)

func newSuggestCommand(ctx *commandContext) *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a separating threshold from the labeled corpora",
		Long: `Scan both labeled corpora, aggregate the window metrics, and suggest
the midpoint between the stuck maximum and the unstuck minimum when the
two classes separate cleanly. Overlapping classes are reported as a
data-quality warning instead of a threshold.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := flags.resolve(cmd, cfg); err != nil {
				return err
			}
			scanner, err := ctx.newScanner()
			if err != nil {
				return err
			}

			stuck, err := scanner.Scan(flags.stuckGlob, flags.window)
			if err != nil {
				return err
			}
			unstuck, err := scanner.Scan(flags.unstuckGlob, flags.window)
			if err != nil {
				return err
			}

			suggestion := calibrate.Suggest(corpus.Metrics(stuck), corpus.Metrics(unstuck))

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "=== SUGGEST (window = %d) ===\n", flags.window)

			if !suggestion.HasStuck() {
				fmt.Fprintln(out, warnLine("no usable windows on the stuck side", colorize))
			}
			if !suggestion.HasUnstuck() {
				fmt.Fprintln(out, warnLine("no usable windows on the unstuck side", colorize))
			}

			caser := cases.Title(language.English)
			rows := [][]string{
				{
					caser.String(string(calibrate.LabelStuck)),
					strconv.Itoa(corpus.WindowCount(stuck)),
					"max",
					formatMetric(suggestion.StuckMax),
				},
				{
					caser.String(string(calibrate.LabelUnstuck)),
					strconv.Itoa(corpus.WindowCount(unstuck)),
					"min",
					formatMetric(suggestion.UnstuckMin),
				},
			}
			fmt.Fprintln(out, renderTable([]tableColumn{
				{Title: "Corpus"},
				{Title: "Windows", Numeric: true},
				{Title: "Extreme"},
				{Title: "Metric", Numeric: true},
			}, rows))

			switch {
			case suggestion.Separable:
				fmt.Fprintf(out, "suggested threshold: %.6f (midpoint of stuck max and unstuck min)\n", suggestion.Threshold)
			case suggestion.Overlap:
				fmt.Fprintln(out, warnLine("stuck max >= unstuck min: no separating threshold exists on this data; revisit the corpora or the window length", colorize))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func formatMetric(value float64) string {
	if math.IsNaN(value) {
		return "n/a"
	}
	return fmt.Sprintf("%.6f", value)
}
