package entity

import "fmt"

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 3
)

// RoundStatus is derived from the board after every move and never stored.
type RoundStatus int

const (
	StatusInProgress RoundStatus = iota
	StatusWon
	StatusDrawn
)

func (that RoundStatus) String() string {
	switch that {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return fmt.Sprintf("RoundStatus(%d)", int(that))
	}
}

// Game holds the board of the current round and the mark that moves next.
// It lives for the whole session and is reset between rounds.
type Game struct {
	Board [BoardSize * BoardSize]string
	Turn  string
}

func NewGame() *Game {
	return &Game{
		Turn: PlayerX,
	}
}

// Reset empties the board and gives the first move back to X.
func (that *Game) Reset() {
	that.Board = [BoardSize * BoardSize]string{}
	that.Turn = PlayerX
}

func (that *Game) SwitchTurn() {
	that.Turn = ToggleMark(that.Turn)
}

// Cell returns the mark at the 1-indexed row and column.
func (that *Game) Cell(row, col int) string {
	return that.Board[CellIndex(row, col)]
}

func (that *Game) EmptyCells() []int {
	cells := make([]int, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// CellIndex converts 1-indexed coordinates into a board index.
func CellIndex(row, col int) int {
	return (row-1)*BoardSize + (col - 1)
}

// CellCoords converts a board index into 1-indexed coordinates.
func CellCoords(cell int) (int, int) {
	return cell/BoardSize + 1, cell%BoardSize + 1
}
