package input

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestQueueOrder(t *testing.T) {
	q := NewQueue(4)

	q.Push(snake.DirUp)
	q.Push(snake.DirLeft)

	if d, ok := q.PollDirection(); !ok || d != snake.DirUp {
		t.Errorf("PollDirection() = %v, %v; expected up", d, ok)
	}
	if d, ok := q.PollDirection(); !ok || d != snake.DirLeft {
		t.Errorf("PollDirection() = %v, %v; expected left", d, ok)
	}
	if _, ok := q.PollDirection(); ok {
		t.Error("Empty queue should report no direction")
	}
}

func TestQueueCollapsesRepeats(t *testing.T) {
	q := NewQueue(4)

	q.Push(snake.DirDown)
	q.Push(snake.DirDown)
	q.Push(snake.DirDown)

	if q.Len() != 1 {
		t.Errorf("Repeated pushes should collapse, got %d entries", q.Len())
	}
}

func TestQueueDropsOldest(t *testing.T) {
	q := NewQueue(2)

	q.Push(snake.DirUp)
	q.Push(snake.DirLeft)
	q.Push(snake.DirDown)

	if q.Len() != 2 {
		t.Fatalf("Queue should be capped at 2, got %d", q.Len())
	}
	if d, _ := q.PollDirection(); d != snake.DirLeft {
		t.Errorf("Oldest entry should be dropped, got %v first", d)
	}

	q.Reset()
	if q.Len() != 0 {
		t.Error("Reset should empty the queue")
	}
}

func TestNewQueueDefaultLimit(t *testing.T) {
	q := NewQueue(0)
	for _, d := range []snake.Direction{snake.DirUp, snake.DirLeft, snake.DirDown, snake.DirRight, snake.DirUp} {
		q.Push(d)
	}
	if q.Len() != DefaultQueueSize {
		t.Errorf("Expected default limit %d, got %d", DefaultQueueSize, q.Len())
	}
}
