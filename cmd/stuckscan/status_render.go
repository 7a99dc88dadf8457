package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"stuckscan/internal/calibrate"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// formatVerdict renders one classification outcome without color; the
// same text goes to the transcript.
func formatVerdict(v calibrate.Verdict, threshold float64) string {
	tag := "[NG]"
	if v.OK {
		tag = "[OK]"
	}
	relation := fmt.Sprintf("expected > %g", threshold)
	if v.Label == calibrate.LabelStuck {
		relation = fmt.Sprintf("expected <= %g", threshold)
	}
	if v.OK {
		if v.Label == calibrate.LabelStuck {
			relation = fmt.Sprintf("(<= %g)", threshold)
		} else {
			relation = fmt.Sprintf("(> %g)", threshold)
		}
	}
	return fmt.Sprintf("%s[%-7s] %s  steps %d..%d  metric=%.6f  %s",
		tag, v.Label, v.Path, v.Start, v.End, v.Metric, relation)
}

// colorizeVerdict wraps the verdict tag in green or red.
func colorizeVerdict(line string, ok bool, colorize bool) string {
	if !colorize {
		return line
	}
	if ok {
		return ansiGreen + "[OK]" + ansiReset + line[len("[OK]"):]
	}
	return ansiRed + "[NG]" + ansiReset + line[len("[NG]"):]
}

func warnLine(message string, colorize bool) string {
	if colorize {
		return ansiYellow + "[WARN]" + ansiReset + " " + message
	}
	return "[WARN] " + message
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
