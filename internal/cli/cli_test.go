package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"entity.json"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "entity.json", cfg.EntityPath)
	require.Equal(t, "framejump.hcl", cfg.ConfigPath)
	require.Equal(t, "main", cfg.UIArea)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.Execute)
	require.Empty(t, cfg.Actions)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"-config", "panel.hcl",
		"-execute", "jump_to_frame",
		"-ui-area", "details",
		"-actions", "show_details, jump_to_frame",
		"-log-format", "json",
		"-log-level", "debug",
		"entity.json",
	}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "panel.hcl", cfg.ConfigPath)
	require.Equal(t, "jump_to_frame", cfg.Execute)
	require.Equal(t, "details", cfg.UIArea)
	require.Equal(t, []string{"show_details", "jump_to_frame"}, cfg.Actions)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_NoEntityPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
}

func TestParse_Rejections(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"two entities":   {"a.json", "b.json"},
		"bad ui area":    {"-ui-area", "sidebar", "entity.json"},
		"bad log format": {"-log-format", "xml", "entity.json"},
		"bad log level":  {"-log-level", "loud", "entity.json"},
		"unknown flag":   {"-frobnicate", "entity.json"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out := &bytes.Buffer{}
			_, _, err := Parse(args, out)
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
