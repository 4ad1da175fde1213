package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRunApp(t *testing.T) {
	t.Run("Two players", func(t *testing.T) {
		// Given: two players, a top row win for X and a "no"
		input := "Alice\nno\nBob\n11\n21\n12\n31\n13\nno\n"
		out := &bytes.Buffer{}

		// When: the app runs
		err := RunApp(testLogger(), &config.Config{AIName: "AI", Seed: 1}, strings.NewReader(input), out)

		// Then: X wins and the session ends
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Alice wins!")
		assert.Contains(t, out.String(), "Goodbye! Thanks for playing!")
	})

	t.Run("Against the bot", func(t *testing.T) {
		// Given: a human who tries every cell in order until one is free
		cells := []string{"11", "12", "13", "21", "22", "23", "31", "32", "33"}
		input := "Alice\nyes\n" + strings.Repeat(strings.Join(cells, "\n")+"\n", 5) + "no\n"
		out := &bytes.Buffer{}

		// When: the app runs against a seeded bot
		err := RunApp(testLogger(), &config.Config{AIName: "Robot", Seed: 99}, strings.NewReader(input), out)

		// Then: the round finishes and the session ends
		require.NoError(t, err)

		screen := out.String()
		assert.Contains(t, screen, "Robot (O)")
		assert.True(t, strings.Contains(screen, "wins!") || strings.Contains(screen, "It's a draw!"))
		assert.Contains(t, screen, "Goodbye! Thanks for playing!")
	})

	t.Run("Input closed", func(t *testing.T) {
		err := RunApp(testLogger(), &config.Config{AIName: "AI"}, strings.NewReader("Alice\n"), io.Discard)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}
