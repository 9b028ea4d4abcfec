// Package input turns key presses into snake directions. Frontends feed it
// either Bubble Tea key names or raw terminal bytes; the game loop only sees
// the non-blocking Provider interface.
package input

import "github.com/vovakirdan/tui-snake/internal/snake"

// DefaultQueueSize is how many turns can be buffered between ticks.
const DefaultQueueSize = 4

// Provider reports pending steering input without blocking the caller.
type Provider interface {
	// PollDirection returns the next pending direction, or false when no
	// direction key was pressed since the last poll.
	PollDirection() (snake.Direction, bool)
}

// Queue is a bounded FIFO of directions. It is not safe for concurrent use;
// the frontend that pushes must be the one that polls.
type Queue struct {
	pending []snake.Direction
	limit   int
}

// NewQueue creates a queue holding at most limit directions.
func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultQueueSize
	}
	return &Queue{
		pending: make([]snake.Direction, 0, limit),
		limit:   limit,
	}
}

// Push appends d, dropping the oldest entry when the queue is full.
// Repeats of the last queued direction are collapsed.
func (q *Queue) Push(d snake.Direction) {
	if n := len(q.pending); n > 0 && q.pending[n-1] == d {
		return
	}
	if len(q.pending) == q.limit {
		copy(q.pending, q.pending[1:])
		q.pending = q.pending[:len(q.pending)-1]
	}
	q.pending = append(q.pending, d)
}

// PollDirection pops the oldest pending direction.
func (q *Queue) PollDirection() (snake.Direction, bool) {
	if len(q.pending) == 0 {
		return 0, false
	}
	d := q.pending[0]
	copy(q.pending, q.pending[1:])
	q.pending = q.pending[:len(q.pending)-1]
	return d, true
}

// Len returns the number of pending directions.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Reset drops all pending directions.
func (q *Queue) Reset() {
	q.pending = q.pending[:0]
}
