package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

// main - is the entry point of the application. It builds the root command and runs it.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play Tic-Tac-Toe in the terminal",
		Long: heredoc.Doc(`tictactoe is a two player Tic-Tac-Toe game for the terminal.
			Player 2 can be replaced by an AI that plays a random free cell.

			Moves are entered as row and column, either "1 3" or "13".
			The scoreboard is kept across rounds until the names change.

			Settings are read from a YAML file (see --config) and from the
			TTT_LOG_LEVEL, TTT_AI_NAME, TTT_NO_COLOR and TTT_SEED variables.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			conf := config.MustLoad(path)

			if cmd.Flag("no-color").Changed {
				conf.NoColor = true
			}

			// If --trace flag is provided, log everything.
			if cmd.Flag("trace").Changed {
				conf.LogLevel = "debug"
			}

			return app.RunApp(initLogger(conf), conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.Flags().StringP("config", "c", "config.yml", "Path to the YAML config file")
	root.Flags().Bool("no-color", false, "Disable colored output")
	root.Flags().BoolP("trace", "t", false, "Write debug logs to stderr")

	return root
}

// initialize logger. Logs go to stderr, stdout belongs to the game screen.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
