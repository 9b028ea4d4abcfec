package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultHint is the controls hint shown on the status line.
const DefaultHint = "Controls: arrows or WASD. Press Ctrl+C to quit."

// Glyphs holds the runes used to draw the board.
type Glyphs struct {
	Head rune
	Body rune
	Food rune
	Wall rune
}

// DefaultGlyphs returns the classic layout: O head, o body, * food, # wall.
func DefaultGlyphs() Glyphs {
	return Glyphs{Head: 'O', Body: 'o', Food: '*', Wall: '#'}
}

// RenderOptions controls how a snapshot is drawn.
type RenderOptions struct {
	Glyphs Glyphs
	Hint   string
}

// DefaultRenderOptions returns the default glyphs and controls hint.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Glyphs: DefaultGlyphs(), Hint: DefaultHint}
}

// StatusLine returns the text shown under the board.
func StatusLine(score int, hint string) string {
	if hint == "" {
		return fmt.Sprintf("Score: %d", score)
	}
	return fmt.Sprintf("Score: %d   %s", score, hint)
}

// ScreenSize returns the screen needed to draw a width x height board with
// its border and status line.
func ScreenSize(width, height int, opts RenderOptions) (int, int) {
	// Widest status line the game can produce.
	status := utf8.RuneCountInString(StatusLine(width*height, opts.Hint))
	return max(width+2, status), height + 3
}

// Render draws snap into dst. Board cell (x, y) lands on screen cell (x, y),
// so the 1-indexed board sits inside a border drawn on row/column 0 and W+1.
func Render(dst *core.Screen, snap Snapshot, opts RenderOptions) {
	dst.Clear()

	dst.DrawFrame(core.NewRect(0, 0, snap.Width+2, snap.Height+2), opts.Glyphs.Wall, core.ColorGray)

	if snap.HasFood {
		dst.SetColor(snap.Food.X, snap.Food.Y, opts.Glyphs.Food, core.ColorRed)
	}

	// Tail first so the head wins when cells coincide.
	for i := len(snap.Body) - 1; i >= 0; i-- {
		seg := snap.Body[i]
		if i == 0 {
			dst.SetColor(seg.X, seg.Y, opts.Glyphs.Head, core.ColorBrightGreen)
		} else {
			dst.SetColor(seg.X, seg.Y, opts.Glyphs.Body, core.ColorGreen)
		}
	}

	dst.DrawText(0, snap.Height+2, StatusLine(snap.Score, opts.Hint), core.ColorBrightWhite)
}

// FinalMessage returns the line printed once the session ends.
func FinalMessage(snap Snapshot, interrupted bool) string {
	switch {
	case interrupted && !snap.Over():
		return fmt.Sprintf("Interrupted. Final score: %d", snap.Score)
	case snap.Won():
		return fmt.Sprintf("You win! You filled the whole board. Final score: %d", snap.Score)
	default:
		return fmt.Sprintf("Game over. Final score: %d", snap.Score)
	}
}
