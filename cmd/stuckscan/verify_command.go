package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stuckscan/internal/calibrate"
	"stuckscan/internal/config"
	"stuckscan/internal/corpus"
	"stuckscan/internal/history"
	"stuckscan/internal/logging"
	"stuckscan/internal/transcript"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	flags := &scanFlags{}
	var threshold float64

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check how well a threshold classifies the labeled corpora",
		Long: `Classify every window of both labeled corpora against the threshold:
stuck windows are expected at or below it, unstuck windows strictly
above it. Prints per-window OK/NG lines and a summary, appends a
transcript to the verify log, and records the run in the history
database.`,
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
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			scanner, err := ctx.newScanner()
			if err != nil {
				return err
			}

			startedAt := time.Now().UTC()

			stuck, err := scanner.Scan(flags.stuckGlob, flags.window)
			if err != nil {
				return err
			}
			unstuck, err := scanner.Scan(flags.unstuckGlob, flags.window)
			if err != nil {
				return err
			}

			report := calibrate.Verify(stuck, unstuck, thr)

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "=== VERIFY (window = %d, threshold = %g) ===\n", flags.window, thr)

			// Plain lines feed the transcript; the console gets the
			// same lines with colored tags.
			var lines []string
			if corpus.WindowCount(stuck) == 0 {
				message := "no usable windows on the stuck side"
				lines = append(lines, "[WARN] "+message)
				fmt.Fprintln(out, warnLine(message, colorize))
			}
			if corpus.WindowCount(unstuck) == 0 {
				message := "no usable windows on the unstuck side"
				lines = append(lines, "[WARN] "+message)
				fmt.Fprintln(out, warnLine(message, colorize))
			}
			for _, verdict := range report.Verdicts {
				line := formatVerdict(verdict, thr)
				lines = append(lines, line)
				fmt.Fprintln(out, colorizeVerdict(line, verdict.OK, colorize))
			}

			summary := summaryLines(report)
			lines = append(lines, summary...)

			fmt.Fprintln(out)
			caser := cases.Title(language.English)
			fmt.Fprintln(out, renderTable([]tableColumn{
				{Title: "Corpus"},
				{Title: "OK", Numeric: true},
				{Title: "NG", Numeric: true},
			}, [][]string{
				{caser.String(string(calibrate.LabelStuck)), strconv.Itoa(report.Stuck.OK), strconv.Itoa(report.Stuck.NG)},
				{caser.String(string(calibrate.LabelUnstuck)), strconv.Itoa(report.Unstuck.OK), strconv.Itoa(report.Unstuck.NG)},
			}))
			fmt.Fprintf(out, "overall : OK=%d  NG=%d  ACC=%.2f%%\n", report.TotalOK(), report.TotalNG(), report.Accuracy())

			writer := transcript.New(cfg.TranscriptPath())
			if err := writer.Append(startedAt, lines); err != nil {
				return fmt.Errorf("append verify transcript: %w", err)
			}
			fmt.Fprintf(out, "transcript appended to %s\n", writer.Path())

			if cfg.History.Enabled {
				if err := recordRun(cmd, cfg, report, flags.window, startedAt); err != nil {
					logger.Warn("verify run not recorded",
						logging.String("db", cfg.History.Path),
						logging.Error(err),
					)
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", -1, "Metric threshold used for classification")
	return cmd
}

// summaryLines renders the plain-text summary block shared by the
// console and the transcript.
func summaryLines(report *calibrate.Report) []string {
	return []string{
		"--- SUMMARY ---",
		fmt.Sprintf("stuck   : OK=%d  NG=%d", report.Stuck.OK, report.Stuck.NG),
		fmt.Sprintf("unstuck : OK=%d  NG=%d", report.Unstuck.OK, report.Unstuck.NG),
		fmt.Sprintf("overall : OK=%d  NG=%d  ACC=%.2f%%", report.TotalOK(), report.TotalNG(), report.Accuracy()),
	}
}

func recordRun(cmd *cobra.Command, cfg *config.Config, report *calibrate.Report, window int, startedAt time.Time) error {
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(cmd.Context(), history.Run{
		StartedAt: startedAt,
		Window:    window,
		Threshold: report.Threshold,
		StuckOK:   report.Stuck.OK,
		StuckNG:   report.Stuck.NG,
		UnstuckOK: report.Unstuck.OK,
		UnstuckNG: report.Unstuck.NG,
		Accuracy:  report.Accuracy(),
	})
	return err
}
