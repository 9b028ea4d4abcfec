// Package term runs the game directly on a raw-mode terminal using
// golang.org/x/term, with one non-blocking input reader per platform.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI control sequences.
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J\x1b[H"
	cursorHome  = "\x1b[H"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("term: input is not a terminal")

// Terminal is an input/output pair held in raw mode with a hidden cursor.
type Terminal struct {
	in    *os.File
	out   io.Writer
	fd    int
	state *term.State
}

// Open switches in to raw mode, hides the cursor and clears the screen.
// The caller must Close the terminal to restore it.
func Open(in *os.File, out io.Writer) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: enter raw mode: %w", err)
	}

	t := &Terminal{in: in, out: out, fd: fd, state: state}
	if _, err := io.WriteString(out, hideCursor+clearScreen); err != nil {
		//nolint:errcheck // Already failing, restore is best-effort
		t.Close()
		return nil, fmt.Errorf("term: prepare screen: %w", err)
	}
	return t, nil
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (width, height int, err error) {
	return term.GetSize(t.fd)
}

// Close shows the cursor and restores the original terminal mode.
// Calling Close more than once is safe.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	_, writeErr := io.WriteString(t.out, showCursor)

	err := term.Restore(t.fd, t.state)
	t.state = nil
	if err != nil {
		return fmt.Errorf("term: restore mode: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("term: show cursor: %w", writeErr)
	}
	return nil
}

// With opens the terminal, runs fn and restores the terminal on every exit
// path, including panics.
func With(in *os.File, out io.Writer, fn func(t *Terminal) error) (err error) {
	t, err := Open(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := t.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(t)
}
