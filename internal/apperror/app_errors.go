package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell coordinates")
	ErrInvalidFormat    = errors.New("invalid move format")
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInputClosed      = errors.New("input closed")
)
