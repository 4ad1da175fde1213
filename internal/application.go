package application

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/prompt"
	"github.com/rocketscienceinc/tictactoe-cli/internal/render"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs game sessions on the given terminal streams until the players quit.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("starting session", "seed", seed, "ai_name", conf.AIName, "no_color", conf.NoColor)

	renderer := render.New(out, conf.NoColor)
	prompter := prompt.New(in, out, prompt.WithStyle(renderer.Question, renderer.Alert))
	bot := service.NewBotService(rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok

	session := usecase.NewSession(logger, prompter, renderer, bot, conf.AIName)

	return session.Run()
}
