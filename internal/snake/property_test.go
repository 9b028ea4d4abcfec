package snake

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// genMoves generates a sequence of steering inputs; -1 means no key pressed.
func genMoves() gopter.Gen {
	return gen.SliceOfN(150, gen.IntRange(-1, 3))
}

// play runs moves against a fresh engine and calls check after every tick.
// It returns false as soon as check does.
func play(w, h int, seed int64, moves []int, check func(e *Engine, before, after Snapshot) bool) bool {
	e, err := New(w, h, WithSeed(seed))
	if err != nil {
		return false
	}
	for _, m := range moves {
		if m >= 0 {
			e.SetDirection(Direction(m))
		}
		before := e.Snapshot()
		after := e.Step()
		if !check(e, before, after) {
			return false
		}
		if after.Over() {
			return true
		}
	}
	return true
}

func engineProperties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestPropertyLengthAndScore(t *testing.T) {
	properties := engineProperties(t)

	properties.Property("length grows by at most one and score tracks growth", prop.ForAll(
		func(w, h int, seed int64, moves []int) bool {
			return play(w, h, seed, moves, func(_ *Engine, before, after Snapshot) bool {
				grew := after.Len() - before.Len()
				scored := after.Score - before.Score
				return (grew == 0 || grew == 1) && scored == grew
			})
		},
		gen.IntRange(3, 8),
		gen.IntRange(1, 8),
		gen.Int64(),
		genMoves(),
	))

	properties.TestingRun(t)
}

func TestPropertyFoodNeverOnSnake(t *testing.T) {
	properties := engineProperties(t)

	properties.Property("food is never placed on the body", prop.ForAll(
		func(w, h int, seed int64, moves []int) bool {
			return play(w, h, seed, moves, func(_ *Engine, _, after Snapshot) bool {
				if !after.HasFood {
					return after.Over()
				}
				for _, seg := range after.Body {
					if seg == after.Food {
						return false
					}
				}
				return true
			})
		},
		gen.IntRange(3, 6),
		gen.IntRange(1, 6),
		gen.Int64(),
		genMoves(),
	))

	properties.TestingRun(t)
}

func TestPropertyBodyStaysConsistent(t *testing.T) {
	properties := engineProperties(t)

	properties.Property("body is contiguous, unique, on the board and mirrored by the occupied set", prop.ForAll(
		func(w, h int, seed int64, moves []int) bool {
			board := core.NewRect(1, 1, w, h)
			return play(w, h, seed, moves, func(e *Engine, _, after Snapshot) bool {
				if len(e.occupied) != after.Len() {
					return false
				}
				for i, seg := range after.Body {
					if !board.Contains(seg) || !e.isOccupied(seg) {
						return false
					}
					if i == 0 {
						continue
					}
					prev := after.Body[i-1]
					dx, dy := seg.X-prev.X, seg.Y-prev.Y
					if dx*dx+dy*dy != 1 {
						return false
					}
				}
				return true
			})
		},
		gen.IntRange(3, 8),
		gen.IntRange(1, 8),
		gen.Int64(),
		genMoves(),
	))

	properties.TestingRun(t)
}

func TestPropertyNoReversal(t *testing.T) {
	properties := engineProperties(t)

	properties.Property("consecutive moves are never opposite", prop.ForAll(
		func(seed int64, moves []int) bool {
			return play(12, 12, seed, moves, func(e *Engine, before, after Snapshot) bool {
				if e.SetDirection(after.Direction.Opposite()) {
					return false
				}
				return after.Direction != before.Direction.Opposite()
			})
		},
		gen.Int64(),
		genMoves(),
	))

	properties.TestingRun(t)
}

func TestPropertyFullBoardIsWin(t *testing.T) {
	properties := engineProperties(t)

	properties.Property("a snake covering the board always means BoardFilled", prop.ForAll(
		func(w, h int, seed int64, moves []int) bool {
			return play(w, h, seed, moves, func(_ *Engine, _, after Snapshot) bool {
				full := after.Len() == w*h
				return full == after.Won()
			})
		},
		gen.IntRange(3, 4),
		gen.IntRange(1, 2),
		gen.Int64(),
		genMoves(),
	))

	properties.TestingRun(t)
}
