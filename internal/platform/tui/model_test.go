package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newTestModel(t *testing.T, w, h int) Model {
	t.Helper()
	e, err := snake.New(w, h, snake.WithSeed(1))
	if err != nil {
		t.Fatalf("snake.New failed: %v", err)
	}
	if !e.Over() {
		// Keep the food off the path of the snake.
		if err := e.PlaceFood(core.Point{X: 1, Y: h}); err != nil {
			t.Fatalf("PlaceFood failed: %v", err)
		}
	}
	return NewModel(e, Options{
		Tick:   100 * time.Millisecond,
		Glyphs: snake.DefaultGlyphs(),
		Keymap: input.DefaultKeymap(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestKeysSteerOnNextTick(t *testing.T) {
	m := newTestModel(t, 10, 6)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.queue.Len() != 1 {
		t.Fatalf("Expected one queued direction, got %d", m.queue.Len())
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("Tick should schedule the next tick")
	}
	if m.snap.Tick != 1 || m.snap.Direction != snake.DirDown {
		t.Errorf("Expected tick 1 moving down, got tick %d moving %v", m.snap.Tick, m.snap.Direction)
	}
}

func TestRuneKeys(t *testing.T) {
	tests := []struct {
		r        rune
		expected snake.Direction
	}{
		{'w', snake.DirUp},
		{'S', snake.DirDown},
		{'d', snake.DirRight},
	}

	for _, tc := range tests {
		m := newTestModel(t, 10, 6)
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tc.r}})
		d, ok := m.queue.PollDirection()
		if !ok || d != tc.expected {
			t.Errorf("Key %q: expected %v, got %v (%v)", tc.r, tc.expected, d, ok)
		}
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := newTestModel(t, 10, 6)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil || m.queue.Len() != 0 {
		t.Error("Unbound key should do nothing")
	}
}

func TestCtrlCInterrupts(t *testing.T) {
	m := newTestModel(t, 10, 6)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Ctrl+C should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Ctrl+C command should produce tea.QuitMsg")
	}

	result := m.Result()
	if !result.Interrupted {
		t.Error("Result should be interrupted")
	}
	if got := snake.FinalMessage(result.Snapshot, result.Interrupted); got != "Interrupted. Final score: 0" {
		t.Errorf("FinalMessage = %q", got)
	}
}

func TestQuitsOnGameOver(t *testing.T) {
	m := newTestModel(t, 5, 3)

	// Head starts at x=3 on a 5-wide board: two moves, then the wall.
	var cmd tea.Cmd
	for range 3 {
		m, cmd = update(t, m, TickMsg(time.Now()))
	}
	if m.snap.Reason != snake.ReasonWallCollision {
		t.Fatalf("Expected wall collision, got %q", m.snap.Reason)
	}
	if cmd == nil {
		t.Fatal("Game over should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Game over command should produce tea.QuitMsg")
	}
	if m.Result().Interrupted {
		t.Error("Finished game is not an interrupt")
	}
}

func TestInitOnFilledBoard(t *testing.T) {
	m := newTestModel(t, 3, 1)
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("A board won at start should quit immediately")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, 6, 3)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d:\n%s", len(lines), view)
	}
	if lines[0] != "########" {
		t.Errorf("Top border = %q", lines[0])
	}
	if !strings.HasPrefix(lines[5], "Score: 0   ") {
		t.Errorf("Status line = %q", lines[5])
	}
	if !strings.Contains(lines[5], "ctrl+c") {
		t.Errorf("Status line should include the controls help, got %q", lines[5])
	}

	m.quitting = true
	if m.View() != "" {
		t.Error("Quitting model should render nothing")
	}
}
