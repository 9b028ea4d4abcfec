package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/platform/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)

// Options configures a Bubble Tea session.
type Options struct {
	Tick   time.Duration
	Glyphs snake.Glyphs
	Color  bool
	Keymap input.Keymap
	Logger *log.Logger
}

// Model is the Bubble Tea model for one game.
type Model struct {
	loop   *loop.Loop
	queue  *input.Queue
	keymap input.Keymap
	help   help.Model
	screen *core.Screen
	opts   snake.RenderOptions
	color  bool
	logger *log.Logger
	now    func() time.Time

	snap        snake.Snapshot
	interrupted bool
	quitting    bool
}

// NewModel creates a model driving e.
func NewModel(e *snake.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	queue := input.NewQueue(input.DefaultQueueSize)
	snap := e.Snapshot()

	h := help.New()
	if !opts.Color {
		h.Styles = help.Styles{}
	}

	return Model{
		loop:   loop.New(e, queue, nil, opts.Tick, loop.WithLogger(logger)),
		queue:  queue,
		keymap: opts.Keymap,
		help:   h,
		// Board and border only; the status line is drawn by View.
		screen: core.NewScreen(snap.Width+2, snap.Height+2),
		opts:   snake.RenderOptions{Glyphs: opts.Glyphs},
		color:  opts.Color,
		logger: logger,
		now:    time.Now,
		snap:   snap,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.snap.Over() {
		return tea.Quit
	}
	return tickCmd(m.loop.Tick())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := msg.String()
	if m.keymap.IsQuit(name) {
		m.logger.Debug("quit key pressed")
		m.interrupted = true
		m.quitting = true
		return m, tea.Quit
	}
	if d, ok := m.keymap.Direction(name); ok {
		m.queue.Push(d)
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next one for
// whatever is left of the tick budget.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	start := m.now()
	m.snap = m.loop.Advance()
	if m.snap.Over() {
		m.logger.Info("game finished", "reason", m.snap.Reason, "score", m.snap.Score, "ticks", m.snap.Tick)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.loop.Remaining(m.now().Sub(start)))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.screen, m.snap, m.opts)
	status := snake.StatusLine(m.snap.Score, "")
	if m.color {
		status = statusStyle.Render(status)
	}
	return render.Screen(m.screen, m.color) + "\n" + status + "   " + m.help.View(m.keymap)
}

// Result reports how the session ended.
func (m Model) Result() loop.Result {
	return loop.Result{Snapshot: m.snap, Interrupted: m.interrupted && !m.snap.Over()}
}

// Run plays e in a Bubble Tea program on the alternate screen. Cancelling
// ctx ends the session as an interrupt.
func Run(ctx context.Context, e *snake.Engine, opts Options, progOpts ...tea.ProgramOption) (loop.Result, error) {
	model := NewModel(e, opts)

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(model, progOpts...)

	final, err := p.Run()

	result := model.Result()
	if fm, ok := final.(Model); ok {
		result = fm.Result()
	}

	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		result.Interrupted = !result.Snapshot.Over()
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("tui: run program: %w", err)
	}
	return result, nil
}
