package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"reversi/internal/board"
	"reversi/internal/cli"
	"reversi/internal/config"
	"reversi/internal/core"
	"reversi/internal/game"
	clitransport "reversi/internal/transport/cli"
)

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && cli.IsTerminal(f)
}

// Root builds the reversi command reading moves from in and drawing to out
func Root(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "reversi",
		Short: "Two-player Reversi in the terminal",
		Long: heredoc.Doc(`
			Two players share one terminal and take turns placing stones on an
			8x8 board. Enter a move as "<row> <col>", both from 0 to 7.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return play(cfg, in, out)
		},
	}

	config.RegisterFlags(root.Flags())
	return root
}

func play(cfg *config.Config, in io.Reader, out io.Writer) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	interactive := isTerminal(in) && isTerminal(out)

	var input cli.LineReader
	if interactive && !cfg.Plain {
		input, err = cli.NewReadlineReader(cfg.HistoryFile)
		if err != nil {
			return err
		}
	} else {
		input = cli.NewScannerReader(in, out)
	}

	view := cli.New(input, out)
	defer view.Close()

	if interactive {
		if err := view.SetTheme(cli.ColorTheme(cfg.Theme)); err != nil {
			return err
		}
	}
	view.SetHints(cfg.Hints)

	log.Debug().
		Str("game", g.ID()).
		Bool("interactive", interactive).
		Str("theme", string(view.Theme())).
		Msg("starting")

	view.ShowWelcome()
	return clitransport.New(g, view).Run()
}

func newGame(cfg *config.Config) (*game.Game, error) {
	id := uuid.New().String()
	if cfg.Position == "" {
		return game.New(id), nil
	}

	b, err := board.Parse(cfg.Position)
	if err != nil {
		return nil, fmt.Errorf("bad --position: %w", err)
	}
	turn := core.Black
	if cfg.Turn == "white" {
		turn = core.White
	}
	return game.Resume(id, b, turn), nil
}
