//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package term

import (
	"os"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newPipeInput(t *testing.T, onQuit func()) (*pollInput, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe failed: %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	tr := input.NewTranslator(input.DefaultKeymap(), input.NewQueue(input.DefaultQueueSize), onQuit)
	return newPollInput(int(r.Fd()), r, tr), w
}

func TestPollInputDoesNotBlock(t *testing.T) {
	p, _ := newPipeInput(t, nil)

	if d, ok := p.PollDirection(); ok {
		t.Errorf("Expected no input, got %v", d)
	}
}

func TestPollInputReadsPendingKeys(t *testing.T) {
	p, w := newPipeInput(t, nil)

	if _, err := w.Write([]byte("\x1b[Bd")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	d, ok := p.PollDirection()
	if !ok || d != snake.DirDown {
		t.Fatalf("Expected down, got %v (%v)", d, ok)
	}
	d, ok = p.PollDirection()
	if !ok || d != snake.DirRight {
		t.Fatalf("Expected right, got %v (%v)", d, ok)
	}
	if _, ok := p.PollDirection(); ok {
		t.Error("Queue should be empty")
	}
}

func TestPollInputQuit(t *testing.T) {
	quit := false
	p, w := newPipeInput(t, func() { quit = true })

	if _, err := w.Write([]byte{0x03}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	p.PollDirection()
	if !quit {
		t.Error("Ctrl+C should trigger the quit callback")
	}
}
