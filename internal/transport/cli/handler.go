package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"reversi/internal/cli"
	"reversi/internal/game"
	"reversi/internal/transport"
)

// Terminal is the interactive side of the loop: a view that can also read
// commands and change its own presentation
type Terminal interface {
	transport.View
	GetCommand(prompt string) (*cli.Command, error)
	SetTheme(theme cli.ColorTheme) error
	ShowHelp()
}

type CLIHandler struct {
	game *game.Game
	view Terminal
}

func New(g *game.Game, view Terminal) *CLIHandler {
	return &CLIHandler{
		game: g,
		view: view,
	}
}

// Run plays turns until the game ends or the user quits. It returns an
// error only when input can no longer be read.
func (h *CLIHandler) Run() error {
	log.Debug().Str("game", h.game.ID()).Msg("session started")

	for {
		h.view.DisplayBoard(h.game.Board(), h.game.Turn())
		black, white := h.game.Score()
		h.view.ShowScore(black, white)

		player := h.game.Turn()
		passed, over := h.game.Advance()
		if over {
			h.view.ShowGameOver()
			break
		}
		if passed {
			h.view.ShowPass(player)
			continue
		}

		quit, err := h.playTurn()
		if err != nil {
			return fmt.Errorf("turn failed: %w", err)
		}
		if quit {
			log.Debug().Str("game", h.game.ID()).Int("moves", len(h.game.Moves())).Msg("session quit")
			return nil
		}
	}

	h.view.DisplayBoard(h.game.Board(), h.game.Turn())
	black, white := h.game.Score()
	h.view.ShowFinalScore(black, white, h.game.State())
	return nil
}

// playTurn reads commands until the player to move places a stone or quits
func (h *CLIHandler) playTurn() (bool, error) {
	h.view.ShowTurn(h.game.Turn())

	for {
		cmd, err := h.view.GetCommand(cli.MovePrompt)
		if err != nil {
			return false, err
		}

		switch cmd.Type {
		case cli.CmdQuit:
			return true, nil

		case cli.CmdInvalid:
			h.view.ShowInvalidInput()

		case cli.CmdMove:
			_, err := h.game.Play(cmd.Row, cmd.Col)
			if err == nil {
				return false, nil
			}
			if !errors.Is(err, game.ErrIllegalMove) {
				return false, err
			}
			log.Debug().Err(err).Msg("rejected move")
			h.view.ShowInvalidMove()

		case cli.CmdHint:
			h.view.ShowHints(h.game.Board().ValidMoves(h.game.Turn()))

		case cli.CmdHistory:
			h.view.ShowGameHistory(h.game.Moves())

		case cli.CmdColor:
			if len(cmd.Args) < 1 {
				h.view.ShowMessage("Usage: color <off|green|gray|brown>")
				continue
			}
			theme := cli.ColorTheme(cmd.Args[0])
			if err := h.view.SetTheme(theme); err != nil {
				h.view.ShowError(err)
				continue
			}
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			h.view.DisplayBoard(h.game.Board(), h.game.Turn())

		case cli.CmdHelp:
			h.view.ShowHelp()
		}
	}
}
