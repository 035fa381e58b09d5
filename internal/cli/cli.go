package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"reversi/internal/board"
	"reversi/internal/core"
	"reversi/internal/game"
)

const MovePrompt = "Enter coordinates (row col), e.g., '3 2': "

type CommandType int

const (
	CmdInvalid CommandType = iota
	CmdMove
	CmdHint
	CmdHistory
	CmdColor
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Row  int
	Col  int
	Args []string
	Raw  string
}

type CLI struct {
	input  LineReader
	output io.Writer
	theme  ColorTheme
	hints  bool
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  ThemeOff,
	}
}

// GetCommand prompts and reads one command. End of input reads as quit.
func (c *CLI) GetCommand(prompt string) (*Command, error) {
	line, err := c.input.ReadLine(prompt)
	if err == io.EOF {
		return &Command{Type: CmdQuit}, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseCommand(line), nil
}

// ParseCommand maps a line to a command. Anything that is not a keyword
// must be exactly two integers.
func ParseCommand(input string) *Command {
	input = strings.TrimSpace(input)
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdInvalid, Raw: input}
	}

	args := parts[1:]
	switch strings.ToLower(parts[0]) {
	case "hint", "moves":
		return &Command{Type: CmdHint, Raw: input}
	case "history":
		return &Command{Type: CmdHistory, Raw: input}
	case "color":
		return &Command{Type: CmdColor, Args: args, Raw: input}
	case "help", "?":
		return &Command{Type: CmdHelp, Raw: input}
	case "quit", "exit":
		return &Command{Type: CmdQuit, Raw: input}
	}

	if len(parts) != 2 {
		return &Command{Type: CmdInvalid, Raw: input}
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return &Command{Type: CmdInvalid, Raw: input}
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return &Command{Type: CmdInvalid, Raw: input}
	}
	return &Command{Type: CmdMove, Row: row, Col: col, Raw: input}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, green, gray, brown)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) Theme() ColorTheme {
	return c.theme
}

func (c *CLI) SetHints(on bool) {
	c.hints = on
}

func (c *CLI) ToggleHints() bool {
	c.hints = !c.hints
	return c.hints
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(c.paint(Red, fmt.Sprintf("Error: %v", err)))
}

// DisplayBoard renders the grid. With the theme off and hints disabled the
// output is the plain board text.
func (c *CLI) DisplayBoard(b *board.Board, turn core.Player) {
	if c.theme == ThemeOff && !c.hints {
		b.Display(c.output)
		return
	}

	theme := themes[c.theme]
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")

	for r := 0; r < board.Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r))
		for col := 0; col < board.Size; col++ {
			cell := b.At(r, col)
			glyph := cell.String()
			color := theme.black
			switch {
			case cell == core.WhiteStone:
				color = theme.white
			case cell == core.Empty && c.hints && b.IsValidMove(r, col, turn):
				glyph = "*"
				color = theme.hint
			}

			if c.theme == ThemeOff {
				sb.WriteString(glyph + " ")
				continue
			}
			bg := theme.darkBg
			if (r+col)%2 == 0 {
				bg = theme.lightBg
			}
			sb.WriteString(fmt.Sprintf("%s%s%s %s", bg, color, glyph, theme.reset))
		}
		sb.WriteByte('\n')
	}

	io.WriteString(c.output, sb.String())
}

func (c *CLI) ShowScore(black, white int) {
	c.ShowMessage(fmt.Sprintf("Black (%s): %d, White (%s): %d", core.Black, black, core.White, white))
}

func (c *CLI) ShowTurn(p core.Player) {
	c.ShowMessage(fmt.Sprintf("Current player: %s (%s's turn)", p, p.Name()))
}

func (c *CLI) ShowPass(p core.Player) {
	c.ShowMessage(c.paint(Yellow, fmt.Sprintf("No moves left for %s. Skipping turn.", p)))
}

func (c *CLI) ShowInvalidInput() {
	c.ShowMessage("Invalid input. Please enter two numbers separated by space.")
}

func (c *CLI) ShowInvalidMove() {
	c.ShowMessage("Invalid move. Try again.")
}

func (c *CLI) ShowGameOver() {
	c.ShowMessage("No moves left for both players. Game over.")
}

func (c *CLI) ShowFinalScore(black, white int, state core.State) {
	c.ShowMessage(fmt.Sprintf("Final score - Black: %d, White: %d", black, white))
	switch state {
	case core.StateBlackWins:
		c.ShowMessage("Black wins!")
	case core.StateWhiteWins:
		c.ShowMessage("White wins!")
	default:
		c.ShowMessage("It's a tie!")
	}
}

func (c *CLI) ShowHints(moves []board.Square) {
	if len(moves) == 0 {
		c.ShowMessage("No legal moves.")
		return
	}
	squares := make([]string, len(moves))
	for i, m := range moves {
		squares[i] = "(" + m.String() + ")"
	}
	c.ShowMessage("Legal moves: " + strings.Join(squares, " "))
}

func (c *CLI) ShowGameHistory(moves []game.Entry) {
	if len(moves) == 0 {
		c.ShowMessage("No moves yet.")
		return
	}
	for i, m := range moves {
		c.ShowMessage(fmt.Sprintf("%2d. %s", i+1, m))
	}
}

func (c *CLI) ShowHelp() {
	help := heredoc.Doc(`
		Commands:
		  <row> <col>      - Place a stone (e.g., 3 2), rows and columns 0-7
		  hint             - List legal squares for the current player
		  history          - Show the moves played so far
		  color <theme>    - Set board color theme (off|green|gray|brown)
		  quit/exit        - Leave the game
		  help/?           - Show this help message
	`)
	io.WriteString(c.output, help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage(c.paint(Cyan, "Welcome to Reversi!"))
	c.ShowMessage("Black (○) moves first. Type 'help' for commands.")
	c.ShowMessage("")
}

func (c *CLI) Close() error {
	return c.input.Close()
}
