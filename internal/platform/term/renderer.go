package term

import (
	"bytes"
	"io"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Renderer redraws the whole board in place on every frame.
type Renderer struct {
	out    io.Writer
	screen *core.Screen
	opts   snake.RenderOptions
	color  bool
	buf    bytes.Buffer
}

// NewRenderer creates a renderer for a width x height board.
func NewRenderer(out io.Writer, width, height int, opts snake.RenderOptions, color bool) *Renderer {
	w, h := snake.ScreenSize(width, height, opts)
	return &Renderer{
		out:    out,
		screen: core.NewScreen(w, h),
		opts:   opts,
		color:  color,
	}
}

// Render implements loop.Renderer.
func (r *Renderer) Render(snap snake.Snapshot) error {
	snake.Render(r.screen, snap, r.opts)

	r.buf.Reset()
	r.buf.WriteString(cursorHome)
	// Raw mode disables output post-processing, so lines need an explicit CR.
	r.buf.WriteString(strings.Join(render.Lines(r.screen, r.color), "\r\n"))
	r.buf.WriteString("\r\n")

	_, err := r.out.Write(r.buf.Bytes())
	return err
}
