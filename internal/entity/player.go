package entity

type Player struct {
	Name  string
	Mark  string
	IsBot bool
}

// Score counts round wins per mark slot. Draws are never recorded.
type Score struct {
	X int
	O int
}

func (that *Score) Record(mark string) {
	switch mark {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

func (that *Score) Reset() {
	that.X = 0
	that.O = 0
}

// Continuation is the answer to the play-again question.
type Continuation int

const (
	ContinueSameNames Continuation = iota
	ContinueNewNames
	Stop
)
