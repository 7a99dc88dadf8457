package main

import (
	"strings"
	"testing"
)

func TestSuggestSeparableCorpora(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "suggest", "--window", "3")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}

	requireContains(t, out, "=== SUGGEST (window = 3) ===")
	requireContains(t, out, "Stuck")
	requireContains(t, out, "Unstuck")
	// stuck max 0, unstuck min sqrt(200/3), midpoint of the two
	requireContains(t, out, "0.000000")
	requireContains(t, out, "8.164966")
	requireContains(t, out, "suggested threshold: 4.082483")
}

func TestSuggestOverlapSuppressesThreshold(t *testing.T) {
	env := setupCLITestEnv(t)
	// Make the unstuck episode identical to the stuck one so the
	// classes collapse onto the same metric.
	writeEpisode(t, env.unstuckPath, [][3]float64{
		{1, 1.5, -2.0},
		{2, 1.5, -2.0},
		{3, 1.5, -2.0},
	})

	out, _, err := runCLI(t, env.configPath, "suggest", "--window", "3")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if strings.Contains(out, "suggested threshold:") {
		t.Fatalf("expected no threshold suggestion, got:\n%s", out)
	}
	requireContains(t, out, "no separating threshold exists")
}

func TestSuggestEmptySideWarns(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "suggest",
		"--window", "3",
		"--stuck-glob", env.baseDir+"/missing/*.json",
	)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	requireContains(t, out, "[WARN] no usable windows on the stuck side")
	requireContains(t, out, "n/a")
}

func TestSuggestRejectsMissingWindow(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "suggest")
	if err == nil {
		t.Fatal("expected an error when no window is given")
	}
	requireContains(t, err.Error(), "window length must be a positive integer")
}

func TestSuggestWindowFromConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	appendConfig(t, env, "[scan]\nwindow = 3\n")

	out, _, err := runCLI(t, env.configPath, "suggest")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	requireContains(t, out, "=== SUGGEST (window = 3) ===")
}

func TestSuggestExplicitZeroWindowFails(t *testing.T) {
	env := setupCLITestEnv(t)
	appendConfig(t, env, "[scan]\nwindow = 3\n")

	// A configured default must not rescue an explicit zero.
	_, _, err := runCLI(t, env.configPath, "suggest", "--window", "0")
	if err == nil {
		t.Fatal("expected an error for --window 0")
	}
	requireContains(t, err.Error(), "window length must be a positive integer (got 0)")
}
