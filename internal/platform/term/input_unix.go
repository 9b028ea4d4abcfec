//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package term

import (
	"io"

	"golang.org/x/sys/unix"

	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// pollInput checks the input descriptor with a zero-timeout poll(2) and only
// reads when bytes are ready, so PollDirection never blocks.
type pollInput struct {
	fd  int
	r   io.Reader
	tr  *input.Translator
	buf [64]byte
}

// NewInput returns the input provider for t.
func NewInput(t *Terminal, tr *input.Translator) input.Provider {
	return newPollInput(t.fd, t.in, tr)
}

func newPollInput(fd int, r io.Reader, tr *input.Translator) *pollInput {
	return &pollInput{fd: fd, r: r, tr: tr}
}

// PollDirection implements input.Provider.
func (p *pollInput) PollDirection() (snake.Direction, bool) {
	p.drain()
	return p.tr.PollDirection()
}

// drain feeds every byte that is already buffered to the translator.
func (p *pollInput) drain() {
	for {
		fds := []unix.PollFd{{Fd: int32(p.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			return
		}

		k, err := p.r.Read(p.buf[:])
		if k > 0 {
			//nolint:errcheck // Translator writes never fail
			p.tr.Write(p.buf[:k])
		}
		if err != nil || k == 0 {
			return
		}
	}
}
