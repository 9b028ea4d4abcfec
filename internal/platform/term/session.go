package term

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configures a terminal session.
type Options struct {
	Tick   time.Duration
	Render snake.RenderOptions
	Color  bool
	Keymap input.Keymap
	Logger *log.Logger
}

// Play runs e on the terminal attached to in and out until the game ends,
// ctx is cancelled or a quit key is pressed. The terminal is restored before
// Play returns.
func Play(ctx context.Context, e *snake.Engine, in *os.File, out io.Writer, opts Options) (loop.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var result loop.Result
	err := With(in, out, func(t *Terminal) error {
		queue := input.NewQueue(input.DefaultQueueSize)
		tr := input.NewTranslator(opts.Keymap, queue, func() {
			logger.Debug("quit key pressed")
			cancel()
		})

		snap := e.Snapshot()
		r := NewRenderer(t.out, snap.Width, snap.Height, opts.Render, opts.Color)

		need, needRows := snake.ScreenSize(snap.Width, snap.Height, opts.Render)
		if cols, rows, err := t.Size(); err == nil && (cols < need || rows < needRows) {
			logger.Warn("terminal smaller than the board", "cols", cols, "rows", rows, "need_cols", need, "need_rows", needRows)
		}

		l := loop.New(e, NewInput(t, tr), r, opts.Tick, loop.WithLogger(logger))
		var err error
		result, err = l.Run(ctx)
		return err
	})
	return result, err
}
