package main

import (
	"strings"
	"testing"

	"stuckscan/internal/calibrate"
)

func TestFormatVerdict(t *testing.T) {
	tests := []struct {
		name    string
		verdict calibrate.Verdict
		want    string
	}{
		{
			name: "stuck ok",
			verdict: calibrate.Verdict{
				Path: "stuck/a.json", Start: 1, End: 3,
				Metric: 0.12, Label: calibrate.LabelStuck, OK: true,
			},
			want: "[OK][stuck  ] stuck/a.json  steps 1..3  metric=0.120000  (<= 0.4)",
		},
		{
			name: "unstuck ng",
			verdict: calibrate.Verdict{
				Path: "unstuck/b.json", Start: 5, End: 7,
				Metric: 0.3, Label: calibrate.LabelUnstuck, OK: false,
			},
			want: "[NG][unstuck] unstuck/b.json  steps 5..7  metric=0.300000  expected > 0.4",
		},
		{
			name: "stuck ng",
			verdict: calibrate.Verdict{
				Path: "stuck/c.json", Start: 0, End: 2,
				Metric: 0.9, Label: calibrate.LabelStuck, OK: false,
			},
			want: "[NG][stuck  ] stuck/c.json  steps 0..2  metric=0.900000  expected <= 0.4",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := formatVerdict(tc.verdict, 0.4)
			if got != tc.want {
				t.Fatalf("formatVerdict = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestColorizeVerdict(t *testing.T) {
	line := "[OK][stuck  ] a.json  steps 1..3  metric=0.000000  (<= 0.4)"
	if got := colorizeVerdict(line, true, false); got != line {
		t.Fatalf("colorize disabled should pass through, got %q", got)
	}
	colored := colorizeVerdict(line, true, true)
	if !strings.HasPrefix(colored, ansiGreen+"[OK]"+ansiReset) {
		t.Fatalf("expected green OK tag, got %q", colored)
	}
	if !strings.HasSuffix(colored, "(<= 0.4)") {
		t.Fatalf("body must survive colorizing, got %q", colored)
	}

	ngLine := "[NG][unstuck] b.json  steps 1..3  metric=0.900000  expected > 0.4"
	if got := colorizeVerdict(ngLine, false, true); !strings.HasPrefix(got, ansiRed+"[NG]"+ansiReset) {
		t.Fatalf("expected red NG tag, got %q", got)
	}
}

func TestWarnLine(t *testing.T) {
	if got := warnLine("low data", false); got != "[WARN] low data" {
		t.Fatalf("warnLine plain = %q", got)
	}
	if got := warnLine("low data", true); got != ansiYellow+"[WARN]"+ansiReset+" low data" {
		t.Fatalf("warnLine colored = %q", got)
	}
}

func TestRenderTableAlignsNumericColumns(t *testing.T) {
	out := renderTable([]tableColumn{
		{Title: "Corpus"},
		{Title: "Windows", Numeric: true},
	}, [][]string{
		{"Stuck", "12"},
		{"Unstuck", "3"},
	})
	requireContains(t, out, "Corpus")
	requireContains(t, out, "Windows")
	requireContains(t, out, "Stuck")
	requireContains(t, out, "12")
}
