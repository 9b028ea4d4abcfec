package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Reason explains why a game reached its terminal state.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonWallCollision Reason = "wall_collision"
	ReasonSelfCollision Reason = "self_collision"
	ReasonBoardFilled   Reason = "board_filled"
)

// Snapshot is an immutable copy of the game state after a tick.
// It owns its Body slice; mutating the engine never changes a snapshot.
type Snapshot struct {
	Width     int
	Height    int
	Tick      uint64
	Body      []core.Point // Head at index 0
	Food      core.Point
	HasFood   bool
	Score     int
	Direction Direction
	Reason    Reason // ReasonNone while the game is ongoing
}

// Head returns the head cell.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Body)
}

// Over reports whether the game has ended.
func (s Snapshot) Over() bool {
	return s.Reason != ReasonNone
}

// Won reports whether the game ended by filling the board.
func (s Snapshot) Won() bool {
	return s.Reason == ReasonBoardFilled
}

// Snapshot returns the current state of the game.
func (e *Engine) Snapshot() Snapshot {
	body := make([]core.Point, len(e.body))
	copy(body, e.body)

	return Snapshot{
		Width:     e.board.W,
		Height:    e.board.H,
		Tick:      e.tick,
		Body:      body,
		Food:      e.food,
		HasFood:   e.hasFood,
		Score:     e.score,
		Direction: e.direction,
		Reason:    e.reason,
	}
}
