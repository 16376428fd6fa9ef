package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Stdio is a Terminal over an input reader and an output writer. Reads go
// through a cancelreader so Close can interrupt a read that is waiting for
// the user.
type Stdio struct {
	src    io.Reader
	in     cancelreader.CancelReader
	reader *bufio.Reader
	out    io.Writer

	fd  int
	tty bool

	// pendingLF is set after a CR ended a keypress read before its LF arrived
	pendingLF bool

	mu     sync.Mutex
	closed bool
}

// NewStdio creates a Terminal reading in and writing out. Raw mode is only
// used when in is an interactive terminal.
func NewStdio(in io.Reader, out io.Writer) (*Stdio, error) {
	cr, err := cancelreader.NewReader(in)
	if err != nil {
		// Regular files cannot be polled; hide the *os.File so the
		// non-interruptible reader is used instead.
		cr, err = cancelreader.NewReader(struct{ io.Reader }{in})
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
	}

	s := &Stdio{
		src:    in,
		in:     cr,
		reader: bufio.NewReader(cr),
		out:    out,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.fd = int(f.Fd())
		s.tty = true
	}
	return s, nil
}

// IsTerminal reports whether input comes from an interactive terminal
func (s *Stdio) IsTerminal() bool {
	return s.tty
}

// Output returns the writer prompts are written to
func (s *Stdio) Output() io.Writer {
	return s.out
}

// Write writes to the output
func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadLine reads up to the next newline. A final unterminated line is
// returned before io.EOF is reported.
func (s *Stdio) ReadLine() (string, error) {
	if err := s.skipPendingLF(); err != nil {
		return "", s.readErr(err)
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" && !s.isClosed() {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", s.readErr(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadKey reads one keypress
func (s *Stdio) ReadKey() (Key, error) {
	if err := s.skipPendingLF(); err != nil {
		return Key{}, s.readErr(err)
	}
	k, err := readKey(s.reader)
	if err != nil {
		return Key{}, s.readErr(err)
	}
	s.pendingLF = k.Name == KeyEnter && k.Rune == '\r'
	return k, nil
}

// skipPendingLF drops the LF completing a CRLF whose CR was already
// reported as Enter
func (s *Stdio) skipPendingLF() error {
	if !s.pendingLF {
		return nil
	}
	s.pendingLF = false

	next, err := s.reader.Peek(1)
	if err != nil {
		return err
	}
	if next[0] == '\n' {
		_, _ = s.reader.ReadByte()
	}
	return nil
}

// Raw puts an interactive terminal into raw mode. For piped input it does
// nothing, keys are then read straight from the stream.
func (s *Stdio) Raw() (func(), error) {
	if !s.tty {
		return func() {}, nil
	}
	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return func() { _ = term.Restore(s.fd, state) }, nil
}

// Close cancels pending reads. Readers that cannot be cancelled (pipes,
// buffers) are closed instead when they support it; stdin is never closed.
func (s *Stdio) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if !s.in.Cancel() {
		if c, ok := s.src.(io.Closer); ok && s.src != io.Reader(os.Stdin) {
			_ = c.Close()
		}
	}
	return s.in.Close()
}

func (s *Stdio) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// readErr maps cancellation to ErrClosed
func (s *Stdio) readErr(err error) error {
	if s.isClosed() || errors.Is(err, cancelreader.ErrCanceled) {
		return ErrClosed
	}
	return err
}
