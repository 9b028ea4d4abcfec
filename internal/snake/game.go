// Package snake implements the Snake game engine: board, body, food and the
// per-tick collision algorithm. It knows nothing about terminals or timing.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// InitialLength is the number of cells of a freshly spawned snake.
const InitialLength = 3

// MaxSide is the largest accepted board width or height.
const MaxSide = 1000

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the engine RNG so food placement is reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the engine draw food positions from r.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// Engine owns the state of one game session.
type Engine struct {
	board core.Rect // Playable cells, 1..W x 1..H
	rng   *rand.Rand
	tick  uint64
	score int

	// Snake state
	body      []core.Point // Head at index 0
	occupied  map[core.Point]struct{}
	direction Direction // Direction of the last move
	nextDir   Direction // Applied on the next Step

	food    core.Point
	hasFood bool

	reason Reason
}

// New creates a game on a width x height board with a 3-cell snake centered
// on it heading right, and places the first food.
func New(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Width: width, Height: height, Reason: "dimensions must be positive"}
	}
	if width > MaxSide || height > MaxSide {
		return nil, &ConfigError{Width: width, Height: height, Reason: fmt.Sprintf("sides must not exceed %d cells", MaxSide)}
	}
	if width*height < InitialLength {
		return nil, &ConfigError{Width: width, Height: height, Reason: "board is smaller than the initial snake"}
	}
	if width < InitialLength {
		return nil, &ConfigError{Width: width, Height: height, Reason: "board is too narrow for the initial snake"}
	}

	e := &Engine{
		board: core.NewRect(1, 1, width, height),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.initSnake()

	if len(e.body) == e.board.Area() {
		// Nothing left to eat on a board the size of the snake.
		e.reason = ReasonBoardFilled
		return e, nil
	}
	if err := e.spawnFood(); err != nil {
		return nil, err
	}
	return e, nil
}

// initSnake lays the snake out horizontally with its head at the center.
func (e *Engine) initSnake() {
	head := core.Point{
		X: max(e.board.W/2, InitialLength),
		Y: max(e.board.H/2, 1),
	}

	e.body = make([]core.Point, 0, InitialLength)
	e.occupied = make(map[core.Point]struct{}, e.board.Area())
	for i := range InitialLength {
		p := core.Point{X: head.X - i, Y: head.Y}
		e.body = append(e.body, p)
		e.occupied[p] = struct{}{}
	}
	e.direction = DirRight
	e.nextDir = DirRight
}

// SetDirection buffers d for the next move unless it reverses the current
// direction. Returns whether d was accepted.
func (e *Engine) SetDirection(d Direction) bool {
	if !d.Valid() || d == e.direction.Opposite() {
		return false
	}
	e.nextDir = d
	return true
}

// Direction returns the direction of the last move.
func (e *Engine) Direction() Direction {
	return e.direction
}

// Step advances the game by one tick and returns the resulting snapshot.
// Once the game is over, Step returns the final snapshot unchanged.
func (e *Engine) Step() Snapshot {
	if e.reason != ReasonNone {
		return e.Snapshot()
	}
	e.tick++

	e.direction = e.nextDir
	newHead := e.body[0].Add(e.direction.Delta())

	if !e.board.Contains(newHead) {
		e.reason = ReasonWallCollision
		return e.Snapshot()
	}

	// The tail vacates its cell this tick unless food is eaten, and food
	// never overlaps the body, so moving onto the tail is always legal.
	tail := e.body[len(e.body)-1]
	if e.isOccupied(newHead) && newHead != tail {
		e.reason = ReasonSelfCollision
		return e.Snapshot()
	}

	e.body = append(e.body, core.Point{})
	copy(e.body[1:], e.body)
	e.body[0] = newHead

	if e.hasFood && newHead == e.food {
		e.score++
		e.occupied[newHead] = struct{}{}
		e.hasFood = false
		// No free cell left: the snake covers the whole board.
		if err := e.spawnFood(); errors.Is(err, ErrNoFreeCell) {
			e.reason = ReasonBoardFilled
			return e.Snapshot()
		}
	} else {
		e.body = e.body[:len(e.body)-1]
		delete(e.occupied, tail)
		e.occupied[newHead] = struct{}{}
	}

	if len(e.body) == e.board.Area() {
		e.reason = ReasonBoardFilled
	}
	return e.Snapshot()
}

// isOccupied checks if the snake covers p.
func (e *Engine) isOccupied(p core.Point) bool {
	_, ok := e.occupied[p]
	return ok
}

// Over reports whether the game has reached a terminal state.
func (e *Engine) Over() bool {
	return e.reason != ReasonNone
}
