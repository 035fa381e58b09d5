package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// LineReader yields one line of user input per call, showing prompt first.
// It returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type scannerReader struct {
	scanner *bufio.Scanner
	output  io.Writer
}

// NewScannerReader reads newline-terminated input from r, writing prompts to w
func NewScannerReader(r io.Reader, w io.Writer) LineReader {
	return &scannerReader{
		scanner: bufio.NewScanner(r),
		output:  w,
	}
}

func (s *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.output, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scannerReader) Close() error {
	return nil
}

type readlineReader struct {
	rl *readline.Instance
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewReadlineReader opens an interactive line editor with persistent history.
// An empty historyFile disables history.
func NewReadlineReader(historyFile string) (LineReader, error) {
	if historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(historyFile), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start readline: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// ^C on an empty line leaves the game, otherwise it clears the line
		if strings.TrimSpace(line) == "" {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}
