package core

type State int

const (
	StateOngoing State = iota
	StateBlackWins
	StateWhiteWins
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateBlackWins:
		return "Black wins"
	case StateWhiteWins:
		return "White wins"
	case StateDraw:
		return "Tie"
	default:
		return "Ongoing"
	}
}

// Over reports whether the state is terminal
func (s State) Over() bool {
	return s != StateOngoing
}

// Outcome maps final stone counts to exactly one terminal state
func Outcome(black, white int) State {
	switch {
	case black > white:
		return StateBlackWins
	case white > black:
		return StateWhiteWins
	default:
		return StateDraw
	}
}
