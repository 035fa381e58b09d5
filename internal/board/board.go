package board

import (
	"fmt"
	"io"
	"strings"

	"reversi/internal/core"
)

const (
	Size = 8
)

// Square addresses a cell by row and column
type Square struct {
	Row int
	Col int
}

func (s Square) String() string {
	return fmt.Sprintf("%d %d", s.Row, s.Col)
}

// directions is the single list of step vectors used by legality checks,
// capture tests and flipping
var directions = [8]Square{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Board struct {
	cells [Size][Size]core.Cell
}

// New returns a board in the standard starting position
func New() *Board {
	b := &Board{}
	b.cells[3][3] = core.WhiteStone
	b.cells[3][4] = core.BlackStone
	b.cells[4][3] = core.BlackStone
	b.cells[4][4] = core.WhiteStone
	return b
}

// Parse reads a layout of eight '/'-separated rows, each eight cells of
// '.', 'B' or 'W' (case-insensitive), listed from row 0.
func Parse(layout string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(layout), "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("invalid layout: expected %d rows, got %d", Size, len(rows))
	}

	b := &Board{}
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("invalid layout: row %d has %d cells", r, len(row))
		}
		for c := 0; c < Size; c++ {
			switch row[c] {
			case '.':
			case 'B', 'b':
				b.cells[r][c] = core.BlackStone
			case 'W', 'w':
				b.cells[r][c] = core.WhiteStone
			default:
				return nil, fmt.Errorf("invalid layout: unexpected %q at %d %d", row[c], r, c)
			}
		}
	}
	return b, nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the cell at row, col. Out of range squares read as Empty.
func (b *Board) At(row, col int) core.Cell {
	if !inBounds(row, col) {
		return core.Empty
	}
	return b.cells[row][col]
}

// IsValidMove reports whether player may place a stone at row, col
func (b *Board) IsValidMove(row, col int, player core.Player) bool {
	if !inBounds(row, col) || b.cells[row][col] != core.Empty {
		return false
	}

	for _, d := range directions {
		if b.captures(row, col, d, player) > 0 {
			return true
		}
	}
	return false
}

// captures walks from the origin along d and returns how many opponent
// stones would be bracketed. Zero means no capture in that direction.
func (b *Board) captures(row, col int, d Square, player core.Player) int {
	own := core.CellFor(player)
	count := 0

	r, c := row+d.Row, col+d.Col
	for inBounds(r, c) {
		switch b.cells[r][c] {
		case core.Empty:
			return 0
		case own:
			return count
		default:
			count++
		}
		r += d.Row
		c += d.Col
	}
	return 0
}

// MakeMove places a stone for player and flips every bracketed run.
// It returns false and leaves the board untouched if the move is illegal.
func (b *Board) MakeMove(row, col int, player core.Player) bool {
	if !b.IsValidMove(row, col, player) {
		return false
	}

	var runs [len(directions)]int
	for i, d := range directions {
		runs[i] = b.captures(row, col, d, player)
	}

	own := core.CellFor(player)
	b.cells[row][col] = own
	for i, d := range directions {
		r, c := row, col
		for n := 0; n < runs[i]; n++ {
			r += d.Row
			c += d.Col
			b.cells[r][c] = own
		}
	}
	return true
}

// Flips lists the squares a move at row, col would turn over, nearest first
// within each direction. It is empty for illegal moves.
func (b *Board) Flips(row, col int, player core.Player) []Square {
	if !b.IsValidMove(row, col, player) {
		return nil
	}

	var flips []Square
	for _, d := range directions {
		n := b.captures(row, col, d, player)
		for i := 1; i <= n; i++ {
			flips = append(flips, Square{Row: row + i*d.Row, Col: col + i*d.Col})
		}
	}
	return flips
}

// ValidMoves returns every legal target for player in row-major order
func (b *Board) ValidMoves(player core.Player) []Square {
	var moves []Square
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.IsValidMove(r, c, player) {
				moves = append(moves, Square{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (b *Board) HasValidMove(player core.Player) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.IsValidMove(r, c, player) {
				return true
			}
		}
	}
	return false
}

// CountStones tallies stones per player
func (b *Board) CountStones() (black, white int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b.cells[r][c] {
			case core.BlackStone:
				black++
			case core.WhiteStone:
				white++
			}
		}
	}
	return black, white
}

// Occupied returns the number of non-empty cells
func (b *Board) Occupied() int {
	black, white := b.CountStones()
	return black + white
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")

	for r := 0; r < Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r))
		for c := 0; c < Size; c++ {
			sb.WriteString(b.cells[r][c].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Display writes the ASCII board to w
func (b *Board) Display(w io.Writer) {
	io.WriteString(w, b.ToASCII())
}
