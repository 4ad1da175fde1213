package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: the board is empty and X moves first
	require.Equal(t, &Game{Turn: PlayerX}, game)
	assert.Len(t, game.EmptyCells(), 9)
}

func TestGame_Reset(t *testing.T) {
	// Given: a game in the middle of a round with O to move
	game := &Game{
		Board: [9]string{PlayerX, PlayerO, PlayerX, "", "", "", "", "", ""},
		Turn:  PlayerO,
	}

	// When: the game is reset
	game.Reset()

	// Then: it matches a fresh game
	assert.Equal(t, NewGame(), game)
}

func TestGame_SwitchTurn(t *testing.T) {
	game := NewGame()

	for n := 1; n <= 9; n++ {
		game.SwitchTurn()

		if n%2 == 0 {
			assert.Equal(t, PlayerX, game.Turn, "after %d moves", n)
		} else {
			assert.Equal(t, PlayerO, game.Turn, "after %d moves", n)
		}
	}
}

func TestCellIndex(t *testing.T) {
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			cell := CellIndex(row, col)

			r, c := CellCoords(cell)
			assert.Equal(t, row, r)
			assert.Equal(t, col, c)
		}
	}

	assert.Equal(t, 0, CellIndex(1, 1))
	assert.Equal(t, 2, CellIndex(1, 3))
	assert.Equal(t, 8, CellIndex(3, 3))
}

func TestScore(t *testing.T) {
	var score Score

	score.Record(PlayerX)
	score.Record(PlayerO)
	score.Record(PlayerO)
	score.Record(EmptyCell)

	assert.Equal(t, Score{X: 1, O: 2}, score)

	score.Reset()
	assert.Equal(t, Score{}, score)
}

func TestRoundStatus_String(t *testing.T) {
	assert.Equal(t, "in progress", StatusInProgress.String())
	assert.Equal(t, "won", StatusWon.String())
	assert.Equal(t, "drawn", StatusDrawn.String())
	assert.Equal(t, "RoundStatus(9)", RoundStatus(9).String())
}
