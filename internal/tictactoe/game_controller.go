package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// WinCombos lists the 3 rows, the 3 columns and the 2 diagonals as board indexes.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// MakeTurn places mark at the 1-indexed row and column. The turn is not
// switched here, the round controller does that after checking the outcome.
func MakeTurn(game *entity.Game, mark string, row, col int) error {
	if RoundStatus(game.Board) != entity.StatusInProgress {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[entity.CellIndex(row, col)] = mark

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark string, row, col int) error {
	if row < 1 || row > entity.BoardSize || col < 1 || col > entity.BoardSize {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, col)
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Cell(row, col) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Winner returns the mark holding a complete line, or an empty string.
func Winner(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

func EvaluateWin(board [9]string) bool {
	return Winner(board) != entity.EmptyCell
}

// EvaluateDraw reports a full board. It says nothing about lines, so callers
// must rule out a win first.
func EvaluateDraw(board [9]string) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

func RoundStatus(board [9]string) entity.RoundStatus {
	switch {
	case EvaluateWin(board):
		return entity.StatusWon
	case EvaluateDraw(board):
		return entity.StatusDrawn
	default:
		return entity.StatusInProgress
	}
}
