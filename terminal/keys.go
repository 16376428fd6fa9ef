package terminal

import (
	"bufio"
	"unicode"
)

// readKey decodes one keypress from r. Escape sequences (arrows, function
// keys) are consumed whole and reported as KeyOther.
func readKey(r *bufio.Reader) (Key, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch c {
	case '\r':
		// Piped input may carry CRLF line endings; never block waiting for
		// the LF, leave it to the next read
		if r.Buffered() == 0 {
			return Key{Name: KeyEnter, Rune: '\r'}, nil
		}
		if next, err := r.Peek(1); err == nil && next[0] == '\n' {
			_, _ = r.ReadByte()
		}
		return Key{Name: KeyEnter}, nil
	case '\n':
		return Key{Name: KeyEnter}, nil
	case 0x7f, '\b':
		return Key{Name: KeyBackspace}, nil
	case 0x03:
		return Key{Name: KeyInterrupt}, nil
	case 0x04:
		return Key{Name: KeyEndOfInput}, nil
	case 0x1b:
		skipEscapeSequence(r)
		return Key{Name: KeyOther}, nil
	}

	if !unicode.IsPrint(c) {
		return Key{Name: KeyOther, Rune: c}, nil
	}
	return Key{Name: KeyRune, Rune: c}, nil
}

// skipEscapeSequence drops the already-buffered remainder of a CSI or SS3
// sequence such as "\x1b[A". A lone ESC is left as is.
func skipEscapeSequence(r *bufio.Reader) {
	if r.Buffered() == 0 {
		return
	}
	next, err := r.Peek(1)
	if err != nil || (next[0] != '[' && next[0] != 'O') {
		return
	}
	_, _ = r.ReadByte()

	for r.Buffered() > 0 {
		b, err := r.ReadByte()
		if err != nil || (b >= 0x40 && b <= 0x7e) {
			return
		}
	}
}
