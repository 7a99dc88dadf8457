package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// cliTestEnv is a temp workspace with one stuck and one unstuck
// episode plus a config file pointing at them.
type cliTestEnv struct {
	baseDir     string
	configPath  string
	logDir      string
	historyPath string
	stuckPath   string
	unstuckPath string
}

// setupCLITestEnv builds a corpus where the classes separate cleanly:
// the stuck episode never moves (every window metric is 0) and the
// unstuck episode drifts 10 units per step (window metric about 8.16
// for window length 3).
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:     base,
		configPath:  filepath.Join(base, "config.toml"),
		logDir:      filepath.Join(base, "log"),
		historyPath: filepath.Join(base, "log", "history.db"),
		stuckPath:   filepath.Join(base, "stuck", "ep1.json"),
		unstuckPath: filepath.Join(base, "unstuck", "ep1.json"),
	}

	writeEpisode(t, env.stuckPath, [][3]float64{
		{1, 1.5, -2.0},
		{2, 1.5, -2.0},
		{3, 1.5, -2.0},
		{4, 1.5, -2.0},
		{5, 1.5, -2.0},
	})
	writeEpisode(t, env.unstuckPath, [][3]float64{
		{1, 0, 0},
		{2, 10, 0},
		{3, 20, 0},
		{4, 30, 0},
		{5, 40, 0},
	})

	writeTestConfig(t, env)
	return env
}

func writeTestConfig(t *testing.T, env *cliTestEnv) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
log_dir = %q

[corpus]
stuck_glob = %q
unstuck_glob = %q

[history]
enabled = true
path = %q

[logging]
format = "console"
level = "warn"
`,
		env.logDir,
		filepath.Join(env.baseDir, "stuck", "*.json"),
		filepath.Join(env.baseDir, "unstuck", "*.json"),
		env.historyPath,
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// writeEpisode writes one episode file. Each sample is (step, x, z);
// the step is written as an integer.
func writeEpisode(t *testing.T, path string, samples [][3]float64) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir episode dir: %v", err)
	}
	var sb strings.Builder
	sb.WriteString(`{"locations":[`)
	for i, s := range samples {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"step":%d,"x":%g,"z":%g}`, int(s[0]), s[1], s[2])
	}
	sb.WriteString(`]}`)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write episode: %v", err)
	}
}

// appendConfig adds extra TOML sections to the env's config file.
func appendConfig(t *testing.T, env *cliTestEnv, content string) {
	t.Helper()
	f, err := os.OpenFile(env.configPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open config: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString("\n" + content); err != nil {
		t.Fatalf("append config: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, output)
	}
}
