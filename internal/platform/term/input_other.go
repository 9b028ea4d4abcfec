//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package term

import (
	"io"

	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// readerInput reads the terminal from a helper goroutine that only forwards
// raw bytes; decoding and game state stay on the polling goroutine.
type readerInput struct {
	chunks <-chan []byte
	tr     *input.Translator
}

// NewInput returns the input provider for t.
func NewInput(t *Terminal, tr *input.Translator) input.Provider {
	return newReaderInput(t.in, tr)
}

func newReaderInput(r io.Reader, tr *input.Translator) *readerInput {
	chunks := make(chan []byte, 16)
	go func() {
		defer close(chunks)
		for {
			buf := make([]byte, 64)
			n, err := r.Read(buf)
			if n > 0 {
				chunks <- buf[:n]
			}
			if err != nil {
				return
			}
		}
	}()
	return &readerInput{chunks: chunks, tr: tr}
}

// PollDirection implements input.Provider.
func (p *readerInput) PollDirection() (snake.Direction, bool) {
	for {
		select {
		case chunk, ok := <-p.chunks:
			if !ok {
				return p.tr.PollDirection()
			}
			//nolint:errcheck // Translator writes never fail
			p.tr.Write(chunk)
		default:
			return p.tr.PollDirection()
		}
	}
}
