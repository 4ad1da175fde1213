package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

func TestRootCmd(t *testing.T) {
	// Given: a root command fed by a scripted game
	out := &bytes.Buffer{}
	cmd := rootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "--no-color"})
	cmd.SetIn(strings.NewReader("Alice\nno\nBob\n11\n21\n12\n31\n13\nno\n"))
	cmd.SetOut(out)

	// When: the command runs
	err := cmd.Execute()

	// Then: the game is played to the end
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Alice wins!")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestInitLogger(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
	}

	for name, level := range cases {
		logger := initLogger(&config.Config{LogLevel: name})

		assert.True(t, logger.Enabled(context.Background(), level), "level %q", name)
		assert.False(t, logger.Enabled(context.Background(), level-1), "level %q below", name)
	}
}
