package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService returns a bot picking uniformly among the empty cells.
func NewBotService(rnd *rand.Rand) BotService {
	return &botService{
		rnd: rnd,
	}
}

// MakeTurn plays the current turn's mark on a random empty cell and returns
// the chosen row and column.
func (that *botService) MakeTurn(game *entity.Game) (int, int, error) {
	availableCells := game.EmptyCells()
	if len(availableCells) == 0 {
		return 0, 0, apperror.ErrNoAvailableMoves
	}

	chosenCell := availableCells[that.rnd.Intn(len(availableCells))]
	row, col := entity.CellCoords(chosenCell)

	if err := tictactoe.MakeTurn(game, game.Turn, row, col); err != nil {
		return 0, 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return row, col, nil
}
