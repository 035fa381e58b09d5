package core

type Player uint8

const (
	Black Player = iota + 1
	White
)

// Players lists both sides in turn order
var Players = [2]Player{Black, White}

func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

// String returns the stone glyph
func (p Player) String() string {
	switch p {
	case Black:
		return "○"
	case White:
		return "●"
	default:
		return "-"
	}
}

func (p Player) Name() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}

// Cell is the state of one board square. Empty is the zero value.
type Cell uint8

const (
	Empty Cell = iota
	BlackStone
	WhiteStone
)

func CellFor(p Player) Cell {
	if p == Black {
		return BlackStone
	}
	return WhiteStone
}

// Owner returns the player whose stone occupies the cell
func (c Cell) Owner() (Player, bool) {
	switch c {
	case BlackStone:
		return Black, true
	case WhiteStone:
		return White, true
	default:
		return 0, false
	}
}

func (c Cell) String() string {
	if p, ok := c.Owner(); ok {
		return p.String()
	}
	return "."
}
