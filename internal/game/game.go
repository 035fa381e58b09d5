package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"reversi/internal/board"
	"reversi/internal/core"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// Entry is one turn in the game log: a placement or a forced pass
type Entry struct {
	Player  core.Player
	Pass    bool
	Square  board.Square // Unset for passes
	Flipped int
}

func (e Entry) String() string {
	if e.Pass {
		return fmt.Sprintf("%s pass", e.Player)
	}
	return fmt.Sprintf("%s %s (+%d)", e.Player, e.Square, e.Flipped)
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Square    board.Square
	Player    core.Player
	Flipped   int
	Black     int
	White     int
	GameState core.State
}

type Game struct {
	id         string
	board      *board.Board
	turn       core.Player
	history    []Entry
	state      core.State
	lastResult *MoveResult
}

// New starts a game from the standard position with Black to move
func New(id string) *Game {
	return &Game{
		id:    id,
		board: board.New(),
		turn:  core.Black,
		state: core.StateOngoing,
	}
}

// Resume continues a game from an arbitrary position
func Resume(id string, b *board.Board, turn core.Player) *Game {
	return &Game{
		id:    id,
		board: b,
		turn:  turn,
		state: core.StateOngoing,
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Turn() core.Player {
	return g.turn
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

// Moves returns a copy of the turn log
func (g *Game) Moves() []Entry {
	moves := make([]Entry, len(g.history))
	copy(moves, g.history)
	return moves
}

// Score returns the current stone counts
func (g *Game) Score() (black, white int) {
	return g.board.CountStones()
}

// Advance settles the start of a turn. If the player to move is stuck the
// turn passes to the opponent; if both are stuck the game ends.
func (g *Game) Advance() (passed, over bool) {
	if g.state.Over() {
		return false, true
	}
	if g.board.HasValidMove(g.turn) {
		return false, false
	}
	if !g.board.HasValidMove(g.turn.Opponent()) {
		g.finish()
		return false, true
	}

	log.Debug().Str("game", g.id).Str("player", g.turn.Name()).Msg("forced pass")
	g.history = append(g.history, Entry{Player: g.turn, Pass: true})
	g.turn = g.turn.Opponent()
	return true, false
}

// Play places a stone for the player to move
func (g *Game) Play(row, col int) (*MoveResult, error) {
	if g.state.Over() {
		return nil, ErrGameOver
	}

	player := g.turn
	flipped := len(g.board.Flips(row, col, player))
	if !g.board.MakeMove(row, col, player) {
		return nil, fmt.Errorf("%w: %d %d for %s", ErrIllegalMove, row, col, player.Name())
	}

	sq := board.Square{Row: row, Col: col}
	g.history = append(g.history, Entry{Player: player, Square: sq, Flipped: flipped})
	g.turn = player.Opponent()

	if !g.board.HasValidMove(core.Black) && !g.board.HasValidMove(core.White) {
		g.finish()
	}

	black, white := g.board.CountStones()
	result := &MoveResult{
		Square:    sq,
		Player:    player,
		Flipped:   flipped,
		Black:     black,
		White:     white,
		GameState: g.state,
	}
	g.lastResult = result

	log.Debug().
		Str("game", g.id).
		Str("player", player.Name()).
		Int("row", row).
		Int("col", col).
		Int("flipped", flipped).
		Msg("move")
	return result, nil
}

func (g *Game) finish() {
	black, white := g.board.CountStones()
	g.state = core.Outcome(black, white)
	log.Debug().
		Str("game", g.id).
		Int("black", black).
		Int("white", white).
		Str("result", g.state.String()).
		Msg("game over")
}
