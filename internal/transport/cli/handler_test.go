package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reversi/internal/board"
	"reversi/internal/cli"
	"reversi/internal/core"
	"reversi/internal/game"
)

func run(t *testing.T, g *game.Game, input string) string {
	t.Helper()
	var out bytes.Buffer
	view := cli.New(cli.NewScannerReader(strings.NewReader(input), &out), &out)
	require.NoError(t, New(g, view).Run())
	return out.String()
}

func resume(t *testing.T, layout string, turn core.Player) *game.Game {
	t.Helper()
	b, err := board.Parse(layout)
	require.NoError(t, err)
	return game.Resume("test", b, turn)
}

func TestRunOpeningMove(t *testing.T) {
	g := game.New("test")
	out := run(t, g, "2 3\nquit\n")

	assert.Contains(t, out, "  0 1 2 3 4 5 6 7\n")
	assert.Contains(t, out, "Black (○): 2, White (●): 2")
	assert.Contains(t, out, "Current player: ○ (Black's turn)")
	assert.Contains(t, out, cli.MovePrompt)
	assert.Contains(t, out, "Black (○): 4, White (●): 1")
	assert.Contains(t, out, "Current player: ● (White's turn)")
	assert.NotContains(t, out, "Final score")

	assert.Equal(t, core.White, g.Turn())
	assert.Len(t, g.Moves(), 1)
}

func TestRunRejectsBadInput(t *testing.T) {
	g := game.New("test")
	out := run(t, g, "abc\n1\n\n1 2 3\n0 0\n9 9\n2 3\nexit\n")

	assert.Equal(t, 4, strings.Count(out, "Invalid input. Please enter two numbers separated by space."))
	assert.Equal(t, 2, strings.Count(out, "Invalid move. Try again."))
	assert.Len(t, g.Moves(), 1)
}

func TestRunEndOfInput(t *testing.T) {
	g := game.New("test")
	out := run(t, g, "")

	assert.Contains(t, out, "Current player: ○ (Black's turn)")
	assert.NotContains(t, out, "Game over")
	assert.Equal(t, core.StateOngoing, g.State())
}

func TestRunToGameOver(t *testing.T) {
	g := resume(t, "BW....../......../......../......../......../......../......../........", core.Black)
	out := run(t, g, "0 2\n")

	assert.Contains(t, out, "Black (○): 3, White (●): 0")
	assert.Contains(t, out, "No moves left for both players. Game over.")
	assert.Contains(t, out, "Final score - Black: 3, White: 0\nBlack wins!\n")
	assert.Equal(t, core.StateBlackWins, g.State())
}

func TestRunForcedPass(t *testing.T) {
	g := resume(t, "BW....../......../......../......../......../......../......../........", core.White)
	out := run(t, g, "0 2\n")

	assert.Contains(t, out, "No moves left for ●. Skipping turn.")
	assert.Contains(t, out, "Current player: ○ (Black's turn)")
	assert.NotContains(t, out, "White's turn")
	assert.Contains(t, out, "Black wins!")

	moves := g.Moves()
	require.Len(t, moves, 2)
	assert.True(t, moves[0].Pass)
	assert.False(t, moves[1].Pass)
}

func TestRunFinalResults(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"tie", "B......W/......../......../......../......../......../......../........", "It's a tie!"},
		{"white", "WW....B./......../......../......../......../......../......../........", "White wins!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, resume(t, tt.layout, core.Black), "")
			assert.Contains(t, out, "No moves left for both players. Game over.")
			assert.True(t, strings.HasSuffix(out, tt.want+"\n"), out)
		})
	}
}

func TestRunCommands(t *testing.T) {
	g := game.New("test")
	out := run(t, g, "hint\nhistory\ncolor\ncolor purple\ncolor green\nhelp\n2 3\nhistory\nquit\n")

	assert.Contains(t, out, "Legal moves: (2 3) (3 2) (4 5) (5 4)")
	assert.Contains(t, out, "No moves yet.")
	assert.Contains(t, out, "Usage: color <off|green|gray|brown>")
	assert.Contains(t, out, "invalid theme: purple")
	assert.Contains(t, out, "Color theme set to: green")
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, " 1. ○ 2 3 (+1)")
}
