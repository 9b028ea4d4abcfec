// Package loop drives a snake.Engine at a fixed tick rate: poll input, steer,
// step, render, then sleep whatever is left of the tick.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// DefaultTick is the tick length used when none is configured.
const DefaultTick = 200 * time.Millisecond

// Renderer displays a snapshot.
type Renderer interface {
	Render(snap snake.Snapshot) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(snap snake.Snapshot) error

// Render calls f(snap).
func (f RenderFunc) Render(snap snake.Snapshot) error {
	return f(snap)
}

// Result describes how a session ended.
type Result struct {
	Snapshot    snake.Snapshot
	Interrupted bool // Stopped by cancellation before a terminal state
}

// Loop is a single-goroutine fixed-tick game driver.
type Loop struct {
	engine *snake.Engine
	input  input.Provider
	out    Renderer
	tick   time.Duration
	logger *log.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for tick diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithClock replaces the wall clock and the sleep used between ticks.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(l *Loop) {
		l.now = now
		l.sleep = sleep
	}
}

// New creates a loop. A non-positive tick falls back to DefaultTick.
func New(engine *snake.Engine, in input.Provider, out Renderer, tick time.Duration, opts ...Option) *Loop {
	if tick <= 0 {
		tick = DefaultTick
	}
	l := &Loop{
		engine: engine,
		input:  in,
		out:    out,
		tick:   tick,
		now:    time.Now,
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// Tick returns the configured tick length.
func (l *Loop) Tick() time.Duration {
	return l.tick
}

// Advance runs the simulation half of one iteration: poll input, steer,
// step. Rendering and pacing are left to the caller.
func (l *Loop) Advance() snake.Snapshot {
	l.steer()
	return l.engine.Step()
}

// steer applies at most one pending direction.
func (l *Loop) steer() {
	if d, ok := l.input.PollDirection(); ok {
		if !l.engine.SetDirection(d) {
			l.logger.Debug("ignored reversing input", "direction", d, "current", l.engine.Direction())
		}
	}
}

// Remaining returns how long to sleep after spending elapsed on a tick.
func (l *Loop) Remaining(elapsed time.Duration) time.Duration {
	return max(0, l.tick-elapsed)
}

// Run plays until the game ends or ctx is cancelled. Cancellation is not an
// error: it is reported through Result.Interrupted.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	snap := l.engine.Snapshot()
	if err := l.out.Render(snap); err != nil {
		return Result{Snapshot: snap}, fmt.Errorf("loop: render initial frame: %w", err)
	}
	l.logger.Info("game started", "width", snap.Width, "height", snap.Height, "tick", l.tick)

	for !snap.Over() {
		if ctx.Err() != nil {
			return l.interrupted(snap), nil
		}

		start := l.now()
		l.steer()
		// Polling may have consumed a quit key that cancelled ctx.
		if ctx.Err() != nil {
			return l.interrupted(snap), nil
		}
		snap = l.engine.Step()
		if err := l.out.Render(snap); err != nil {
			return Result{Snapshot: snap}, fmt.Errorf("loop: render tick %d: %w", snap.Tick, err)
		}
		if snap.Over() {
			break
		}

		elapsed := l.now().Sub(start)
		if elapsed > l.tick {
			l.logger.Debug("tick overran budget", "tick", snap.Tick, "elapsed", elapsed, "budget", l.tick)
		}
		if err := l.sleep(ctx, l.Remaining(elapsed)); err != nil {
			return l.interrupted(snap), nil
		}
	}

	l.logger.Info("game finished", "reason", snap.Reason, "score", snap.Score, "ticks", snap.Tick)
	return Result{Snapshot: snap}, nil
}

func (l *Loop) interrupted(snap snake.Snapshot) Result {
	l.logger.Info("game interrupted", "score", snap.Score, "ticks", snap.Tick)
	return Result{Snapshot: snap, Interrupted: true}
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
