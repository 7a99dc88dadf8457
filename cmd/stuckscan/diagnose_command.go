package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"stuckscan/internal/corpus"
	"stuckscan/internal/series"
)

// gapPreviewLimit caps how many missing ranges diagnose prints per file.
const gapPreviewLimit = 5

func newDiagnoseCommand(ctx *commandContext) *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Explain why episodes yield few or no windows",
		Long: `Print per-file step counts, the longest contiguous step run, and the
first missing-step ranges for both corpora. Use this when suggest or
verify reports zero usable windows for a window length.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := flags.resolve(cmd, cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== DIAGNOSE (window = %d) ===\n", flags.window)

			anyFile := false
			for _, side := range []struct {
				label   string
				pattern string
			}{
				{"stuck", flags.stuckGlob},
				{"unstuck", flags.unstuckGlob},
			} {
				fmt.Fprintf(out, "\n[%s] %s\n", side.label, side.pattern)

				paths, err := corpus.Expand(side.pattern)
				if err != nil {
					return err
				}
				if len(paths) == 0 {
					fmt.Fprintln(out, "  (no matching files)")
					continue
				}

				for _, path := range paths {
					anyFile = true
					episode, err := series.Load(path)
					if err != nil {
						fmt.Fprintf(out, "  %s\n    [ERROR] load failed: %v\n", path, err)
						continue
					}
					printEpisodeDiagnostics(out, episode, flags.window)
				}
			}

			if !anyFile {
				fmt.Fprintln(out, "\nno files matched either glob; check --stuck-glob / --unstuck-glob and the working directory")
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printEpisodeDiagnostics(out io.Writer, episode *series.Series, window int) {
	steps := episode.StepSet()
	longest := series.LongestRun(steps)
	gaps := series.MissingRanges(steps)

	fmt.Fprintf(out, "  %s\n", episode.Path)
	if len(steps) == 0 {
		fmt.Fprintf(out, "    steps: total=0 unique=0\n")
		return
	}
	fmt.Fprintf(out, "    steps: total=%d unique=%d min=%d max=%d\n",
		episode.Len(), len(steps), steps[0], steps[len(steps)-1])
	fmt.Fprintf(out, "    longest contiguous run: %d  (required: %d)\n", longest, window)
	if longest < window {
		fmt.Fprintf(out, "    -> no span of %d consecutive steps exists; shrink the window or fill the gaps\n", window)
	}
	if len(gaps) == 0 {
		fmt.Fprintln(out, "    missing steps: (none)")
		return
	}
	fmt.Fprintf(out, "    missing steps: %s\n", formatGapPreview(gaps))
}

func formatGapPreview(gaps []series.Gap) string {
	preview := gaps
	truncated := false
	if len(preview) > gapPreviewLimit {
		preview = preview[:gapPreviewLimit]
		truncated = true
	}
	parts := make([]string, 0, len(preview))
	for _, gap := range preview {
		if gap.First == gap.Last {
			parts = append(parts, fmt.Sprintf("%d", gap.First))
		} else {
			parts = append(parts, fmt.Sprintf("%d..%d", gap.First, gap.Last))
		}
	}
	joined := strings.Join(parts, ", ")
	if truncated {
		joined += " ..."
	}
	return joined
}
