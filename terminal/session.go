package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// DefaultMask is echoed for each character typed at a masked prompt
const DefaultMask = '*'

// Session owns a Terminal for the duration of one or more questionnaires
type Session struct {
	term Terminal

	mu      sync.Mutex
	handler KeyHandler

	once     sync.Once
	done     chan struct{}
	closeErr error
}

// NewSession wraps t. The session closes t when it is closed.
func NewSession(t Terminal) *Session {
	return &Session{
		term: t,
		done: make(chan struct{}),
	}
}

// OpenStdio creates a session on the process's stdin and stdout
func OpenStdio() (*Session, error) {
	t, err := NewStdio(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}
	return NewSession(t), nil
}

// Writer returns where prompts and messages go. When the terminal exposes
// its output stream, that stream is returned so color detection sees the
// real destination.
func (s *Session) Writer() io.Writer {
	if o, ok := s.term.(interface{ Output() io.Writer }); ok {
		return o.Output()
	}
	return s.term
}

// Done is closed once the session has been closed
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Closed reports whether Close has been called
func (s *Session) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Close releases the terminal. Only the first call has any effect; later
// calls return the first call's result.
func (s *Session) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.closeErr = s.term.Close()
	})
	return s.closeErr
}

// SetKeyHandler installs h as the keypress listener and returns the
// listener it replaced, so callers can put it back.
func (s *Session) SetKeyHandler(h KeyHandler) KeyHandler {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.handler
	s.handler = h
	return prev
}

func (s *Session) dispatch(k Key) {
	s.mu.Lock()
	h := s.handler
	s.mu.Unlock()
	if h != nil {
		h(k)
	}
}

// Line writes prompt and returns the next line typed. End of input closes
// the session and returns ErrClosed.
func (s *Session) Line(prompt string) (string, error) {
	if s.Closed() {
		return "", ErrClosed
	}
	if _, err := io.WriteString(s.term, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := s.term.ReadLine()
	if err != nil {
		return "", s.readFailed(err)
	}
	if s.Closed() {
		return "", ErrClosed
	}
	return line, nil
}

// Masked writes prompt and reads keypresses until Enter, echoing mask for
// each character instead of the character itself. Backspace removes the
// last character and redraws the line. Ctrl+C or Ctrl+D closes the session.
//
// While reading, Masked's own listener replaces any installed KeyHandler;
// the previous one is restored before Masked returns.
func (s *Session) Masked(prompt string, mask rune) (string, error) {
	if s.Closed() {
		return "", ErrClosed
	}
	if mask == 0 {
		mask = DefaultMask
	}

	restore, err := s.term.Raw()
	if err != nil {
		return "", err
	}
	defer restore()

	var (
		buf         []rune
		entered     bool
		interrupted bool
		writeErr    error
	)
	write := func(text string) {
		if _, err := io.WriteString(s.term, text); err != nil && writeErr == nil {
			writeErr = err
		}
	}

	prev := s.SetKeyHandler(func(k Key) {
		switch k.Name {
		case KeyEnter:
			entered = true
		case KeyInterrupt, KeyEndOfInput:
			interrupted = true
		case KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
			write("\r\x1b[2K" + prompt + strings.Repeat(string(mask), len(buf)))
		case KeyRune:
			buf = append(buf, k.Rune)
			write(string(mask))
		}
	})
	defer s.SetKeyHandler(prev)

	write(prompt)
	for !entered {
		k, err := s.term.ReadKey()
		if err != nil {
			return "", s.readFailed(err)
		}
		s.dispatch(k)

		if interrupted {
			write("\r\n")
			_ = s.Close()
			return "", ErrClosed
		}
		if writeErr != nil {
			return "", fmt.Errorf("failed to echo input: %w", writeErr)
		}
	}

	write("\r\n")
	return string(buf), nil
}

// readFailed closes the session when input has ended and reports ErrClosed.
// Other read errors are returned unchanged.
func (s *Session) readFailed(err error) error {
	if s.Closed() || errors.Is(err, ErrClosed) || errors.Is(err, io.EOF) {
		_ = s.Close()
		return ErrClosed
	}
	return err
}
