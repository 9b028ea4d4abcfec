package input

import (
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
)

// arrowKeys maps the final byte of CSI/SS3 cursor sequences to key names.
var arrowKeys = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
}

// Decoder splits raw terminal input into key names. Escape sequences that
// arrive split across reads are held until the rest shows up.
type Decoder struct {
	pending []byte
}

// Feed decodes b (plus anything held back from earlier calls) and returns
// the recognised key names in order. Unknown sequences are dropped.
func (d *Decoder) Feed(b []byte) []string {
	buf := append(d.pending, b...)
	d.pending = nil

	var keys []string
	for len(buf) > 0 {
		name, n := decodeOne(buf)
		if n == 0 {
			// Incomplete escape sequence.
			d.pending = append([]byte(nil), buf...)
			break
		}
		if name != "" {
			keys = append(keys, name)
		}
		buf = buf[n:]
	}
	return keys
}

// decodeOne decodes the key at the start of buf. It returns the key name
// (empty for ignored input) and the bytes consumed; n == 0 means buf holds
// an incomplete sequence.
func decodeOne(buf []byte) (string, int) {
	switch c := buf[0]; {
	case c == keyCtrlC:
		return "ctrl+c", 1
	case c == keyEsc:
		return decodeEscape(buf)
	case c < 0x20 || c == 0x7f:
		return "", 1
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		if !utf8.FullRune(buf) {
			return "", 0
		}
		return "", size
	}
	if !unicode.IsPrint(r) {
		return "", size
	}
	return string(r), size
}

// decodeEscape handles ESC [ ... and ESC O ... sequences.
func decodeEscape(buf []byte) (string, int) {
	if len(buf) < 2 {
		return "", 0
	}

	switch buf[1] {
	case 'O':
		if len(buf) < 3 {
			return "", 0
		}
		return arrowKeys[buf[2]], 3
	case '[':
		// Skip parameter and intermediate bytes up to the final byte.
		for i := 2; i < len(buf); i++ {
			if c := buf[i]; c >= 0x40 && c <= 0x7e {
				return arrowKeys[c], i + 1
			}
		}
		return "", 0
	default:
		// Lone escape followed by a regular key: drop the escape.
		return "", 1
	}
}

// Translator feeds decoded keys into a Queue and reports quit keys.
// It implements io.Writer so raw terminal input can be copied into it.
type Translator struct {
	decoder Decoder
	keymap  Keymap
	queue   *Queue
	onQuit  func()
}

// NewTranslator creates a translator that pushes directions onto queue
// and calls onQuit for quit keys.
func NewTranslator(keymap Keymap, queue *Queue, onQuit func()) *Translator {
	return &Translator{
		keymap: keymap,
		queue:  queue,
		onQuit: onQuit,
	}
}

// Write decodes p and dispatches every key it contains.
func (t *Translator) Write(p []byte) (int, error) {
	for _, name := range t.decoder.Feed(p) {
		t.HandleKey(name)
	}
	return len(p), nil
}

// HandleKey dispatches a single key name.
func (t *Translator) HandleKey(name string) {
	if t.keymap.IsQuit(name) {
		if t.onQuit != nil {
			t.onQuit()
		}
		return
	}
	if d, ok := t.keymap.Direction(name); ok {
		t.queue.Push(d)
	}
}

// PollDirection implements Provider.
func (t *Translator) PollDirection() (snake.Direction, bool) {
	return t.queue.PollDirection()
}
