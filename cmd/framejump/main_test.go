package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A config with a syntax error is guaranteed to panic inside
	// app.NewApp(); run() must recover it into a plain error.
	tempDir := t.TempDir()
	configPath := writeFile(t, tempDir, "framejump.hcl", `settings {`)
	entityPath := writeFile(t, tempDir, "entity.json", `{"type": "Version", "id": 1}`)

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, []string{"-config", configPath, entityPath})

	// --- Assert ---
	require.Error(t, runErr)
	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "the error should indicate a recovered panic")
	require.True(t, strings.Contains(errStr, "failed to parse"), "the error should carry the underlying reason")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-h"}))

	// No arguments at all prints usage and exits cleanly too.
	out.Reset()
	require.NoError(t, run(out, nil))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ListsActions(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	configPath := writeFile(t, tempDir, "framejump.hcl", `
action "show_details" {
  caption = "Show Details"
}

entity "Version" {
  actions = ["show_details"]
}
`)
	entityPath := writeFile(t, tempDir, "entity.json", `{"type": "Version", "id": 1234}`)

	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-config", configPath, entityPath}))
	require.Contains(t, out.String(), "Show Details")
}

func TestRun_BadFlagReturnsExitError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-ui-area", "sidebar", "entity.json"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid ui-area")
}
