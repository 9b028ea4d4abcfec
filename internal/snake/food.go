package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// spawnFood places food uniformly at random on a cell the snake does not cover.
func (e *Engine) spawnFood() error {
	free := e.freeCells()
	if len(free) == 0 {
		e.hasFood = false
		return ErrNoFreeCell
	}

	e.food = free[e.rng.Intn(len(free))]
	e.hasFood = true
	return nil
}

// freeCells collects every board cell not covered by the snake, row by row.
func (e *Engine) freeCells() []core.Point {
	cells := make([]core.Point, 0, e.board.Area()-len(e.body))
	for y := e.board.Y; y < e.board.Bottom(); y++ {
		for x := e.board.X; x < e.board.Right(); x++ {
			p := core.Point{X: x, Y: y}
			if !e.isOccupied(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// PlaceFood moves the food to p. It fails for cells that are off the board
// or covered by the snake.
func (e *Engine) PlaceFood(p core.Point) error {
	if !e.board.Contains(p) || e.isOccupied(p) {
		return fmt.Errorf("snake: place food at (%d, %d): %w", p.X, p.Y, ErrCellUnavailable)
	}
	e.food = p
	e.hasFood = true
	return nil
}
