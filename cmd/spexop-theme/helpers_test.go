package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spexop/theme/internal/themefile"
	"github.com/spexop/theme/pkg/theme"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the root command with an isolated settings file.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	settings := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("log_level: error\nlog_human: false\n"), 0o600))

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", settings}, args...))

	err := root.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func saveTheme(t *testing.T, dir, name string, cfg theme.Config) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, themefile.Save(path, cfg))
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// washedOut fails body text and primary contrast on its white surface.
func washedOut() theme.Config {
	cfg := theme.Default()
	cfg.Meta.Name = "Washed Out"
	cfg.Colors.Text = "#eeeeee"
	cfg.Colors.Primary = "#eeeeee"
	return cfg
}

func brand() theme.Config {
	cfg := theme.Default()
	cfg.Meta.Name = "Brand"
	cfg.Colors.Primary = "#e11d48"
	return cfg
}
