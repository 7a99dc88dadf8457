package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stuckscan/internal/corpus"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	flags := &scanFlags{}
	var threshold float64

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "List every window at or below the threshold",
		Long: `Scan both corpus globs as one undifferentiated pool and print every
window whose metric is at or below the threshold. Labels are ignored;
this is the raw detection pass.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := flags.resolve(cmd, cfg); err != nil {
				return err
			}
			thr, err := resolveThreshold(threshold, cfg)
			if err != nil {
				return err
			}
			scanner, err := ctx.newScanner()
			if err != nil {
				return err
			}

			var sources []corpus.SourceWindows
			for _, pattern := range []string{flags.stuckGlob, flags.unstuckGlob} {
				scanned, err := scanner.Scan(pattern, flags.window)
				if err != nil {
					return err
				}
				sources = append(sources, scanned...)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== DETECT (window = %d, threshold = %g) ===\n", flags.window, thr)

			found := false
			for _, src := range sources {
				for _, w := range src.Windows {
					if w.Metric <= thr {
						found = true
						fmt.Fprintf(out, "[STUCK] %s  steps %d..%d  metric=%.6f\n", src.Path, w.Start, w.End, w.Metric)
					}
				}
			}
			if !found {
				fmt.Fprintln(out, "no stuck windows found")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", -1, "Metric threshold for stuck classification")
	return cmd
}
