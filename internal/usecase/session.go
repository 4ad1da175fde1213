package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const (
	indent = "         "

	defaultPlayerXName = "Player 1"
	defaultPlayerOName = "Player 2"

	answerYes         = "yes"
	answerNo          = "no"
	answerChangeNames = "change names"
)

const (
	msgInvalidFormat = indent + "Invalid format. Please enter '1 3' or '13'."
	msgInvalidMove   = indent + "Invalid move. Please try again."
	msgYesNo         = "Please answer 'yes' or 'no'."
	msgPlayAgain     = "Please answer 'yes', 'no', or 'change names'."
	msgReuseNames    = "Using previous player names."
)

type prompter interface {
	Ask(question string) (string, error)
	Validate(question string, fn func(answer string) (string, bool)) error
	Choose(question, errMsg string, choices ...string) (string, error)
}

type renderer interface {
	Clear()
	Title()
	Board(game *entity.Game, playerX, playerO *entity.Player)
	Winner(p *entity.Player)
	Draw()
	Scoreboard(playerX, playerO *entity.Player, score entity.Score)
	Info(msg string)
	Farewell()
}

type botPlayer interface {
	MakeTurn(game *entity.Game) (int, int, error)
}

// Session owns every piece of state that outlives a round: the board, the
// players and the scoreboard.
type Session struct {
	logger *slog.Logger

	prompter prompter
	renderer renderer
	bot      botPlayer
	botName  string

	game    *entity.Game
	playerX *entity.Player
	playerO *entity.Player
	score   entity.Score
}

func NewSession(logger *slog.Logger, prompter prompter, renderer renderer, bot botPlayer, botName string) *Session {
	return &Session{
		logger: logger.With("component", "session"),

		prompter: prompter,
		renderer: renderer,
		bot:      bot,
		botName:  botName,

		game: entity.NewGame(),
	}
}

// Run plays rounds until the players answer "no" to the play-again question.
func (that *Session) Run() error {
	for round := 1; ; round++ {
		if err := that.setup(); err != nil {
			return fmt.Errorf("failed to set up players: %w", err)
		}

		status, err := that.PlayRound()
		if err != nil {
			return fmt.Errorf("round %d failed: %w", round, err)
		}

		that.logger.Info("round finished", "round", round, "status", status.String(),
			"score_x", that.score.X, "score_o", that.score.O)

		choice, err := that.askContinue()
		if err != nil {
			return fmt.Errorf("failed to ask for another round: %w", err)
		}

		switch choice {
		case entity.Stop:
			that.renderer.Farewell()
			return nil
		case entity.ContinueNewNames:
			that.score.Reset()
			that.playerX, that.playerO = nil, nil
		case entity.ContinueSameNames:
		}

		that.game.Reset()
	}
}

// setup asks for names and the game mode unless they are remembered.
func (that *Session) setup() error {
	if that.playerX != nil && that.playerO != nil {
		that.renderer.Info(msgReuseNames)
		return nil
	}

	that.renderer.Clear()
	that.renderer.Title()

	nameX, err := that.askName("Enter Player 1 name: ", defaultPlayerXName)
	if err != nil {
		return err
	}
	playerX := &entity.Player{Name: nameX, Mark: entity.PlayerX}

	answer, err := that.prompter.Choose("Do you want to play against AI? (yes/no): ", msgYesNo, answerYes, answerNo)
	if err != nil {
		return err
	}

	playerO := &entity.Player{Name: that.botName, Mark: entity.PlayerO, IsBot: true}
	if answer == answerNo {
		nameO, err := that.askName("Enter Player 2 name: ", defaultPlayerOName)
		if err != nil {
			return err
		}
		playerO = &entity.Player{Name: nameO, Mark: entity.PlayerO}
	}

	that.playerX, that.playerO = playerX, playerO
	that.logger.Debug("players set", "player_x", playerX.Name, "player_o", playerO.Name, "bot", playerO.IsBot)

	return nil
}

func (that *Session) askName(question, fallback string) (string, error) {
	name, err := that.prompter.Ask(question)
	if err != nil {
		return "", err
	}

	if name == "" {
		return fallback, nil
	}

	return name, nil
}

func (that *Session) askContinue() (entity.Continuation, error) {
	answer, err := that.prompter.Choose("\nDo you want to play again? (yes/no/change names): ", msgPlayAgain,
		answerYes, answerNo, answerChangeNames)
	if err != nil {
		return entity.Stop, err
	}

	switch answer {
	case answerYes:
		return entity.ContinueSameNames, nil
	case answerChangeNames:
		return entity.ContinueNewNames, nil
	default:
		return entity.Stop, nil
	}
}

func (that *Session) playerFor(mark string) *entity.Player {
	if mark == entity.PlayerX {
		return that.playerX
	}
	return that.playerO
}

// PlayRound runs one round from the current board until it is won or drawn.
func (that *Session) PlayRound() (entity.RoundStatus, error) {
	for {
		that.renderer.Board(that.game, that.playerX, that.playerO)

		current := that.playerFor(that.game.Turn)
		if err := that.move(current); err != nil {
			return entity.StatusInProgress, err
		}

		if tictactoe.EvaluateWin(that.game.Board) {
			that.renderer.Board(that.game, that.playerX, that.playerO)
			that.renderer.Winner(current)
			that.score.Record(current.Mark)
			that.renderer.Scoreboard(that.playerX, that.playerO, that.score)

			return entity.StatusWon, nil
		}

		if tictactoe.EvaluateDraw(that.game.Board) {
			that.renderer.Board(that.game, that.playerX, that.playerO)
			that.renderer.Draw()

			return entity.StatusDrawn, nil
		}

		that.game.SwitchTurn()
	}
}

func (that *Session) move(player *entity.Player) error {
	if !player.IsBot {
		return that.humanMove(player)
	}

	row, col, err := that.bot.MakeTurn(that.game)
	if errors.Is(err, apperror.ErrNoAvailableMoves) {
		that.logger.Warn("bot has no move to make")
		return nil
	}
	if err != nil {
		return fmt.Errorf("bot move failed: %w", err)
	}

	that.logger.Debug("move accepted", "player", player.Name, "mark", player.Mark, "row", row, "col", col)

	return nil
}

func (that *Session) humanMove(player *entity.Player) error {
	question := fmt.Sprintf("\n%s%s (%s), make your move (row column = 1 3 or 13): ", indent, player.Name, player.Mark)

	return that.prompter.Validate(question, func(answer string) (string, bool) {
		row, col, err := tictactoe.ParseMove(answer)
		if errors.Is(err, apperror.ErrInvalidFormat) {
			that.logger.Debug("move rejected", "input", answer, "error", err)
			return msgInvalidFormat, false
		}

		if err == nil {
			err = tictactoe.MakeTurn(that.game, player.Mark, row, col)
		}
		if err != nil {
			that.logger.Debug("move rejected", "input", answer, "error", err)
			return msgInvalidMove, false
		}

		that.logger.Debug("move accepted", "player", player.Name, "mark", player.Mark, "row", row, "col", col)

		return "", true
	})
}
