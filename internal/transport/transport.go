package transport

import (
	"reversi/internal/board"
	"reversi/internal/core"
	"reversi/internal/game"
)

// View abstracts display/output operations
type View interface {
	DisplayBoard(b *board.Board, turn core.Player)
	ShowScore(black, white int)
	ShowTurn(p core.Player)
	ShowPass(p core.Player)
	ShowInvalidInput()
	ShowInvalidMove()
	ShowGameOver()
	ShowFinalScore(black, white int, state core.State)
	ShowHints(moves []board.Square)
	ShowGameHistory(moves []game.Entry)
	ShowMessage(msg string)
	ShowError(err error)
}
