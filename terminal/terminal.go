package terminal

import (
	"errors"
	"io"
)

// ErrClosed is returned by reads on a session that has been closed, either
// explicitly or because the user ended input.
var ErrClosed = errors.New("terminal session closed")

// Terminal is the line and keypress capability a Session drives
type Terminal interface {
	io.Writer

	// ReadLine returns the next line of input without its terminator
	ReadLine() (string, error)

	// ReadKey returns the next keypress
	ReadKey() (Key, error)

	// Raw switches the terminal into keypress mode without echo. The
	// returned function restores the previous mode.
	Raw() (restore func(), err error)

	// Close stops reading and unblocks any pending read
	Close() error
}

// KeyName identifies special keys
type KeyName int

const (
	KeyRune KeyName = iota
	KeyEnter
	KeyBackspace
	KeyInterrupt  // Ctrl+C
	KeyEndOfInput // Ctrl+D
	KeyOther
)

// Key is a single keypress. Rune is set for KeyRune, and is '\r' for a
// KeyEnter whose CR may still be followed by the LF of a CRLF.
type Key struct {
	Name KeyName
	Rune rune
}

// KeyHandler receives keypresses while a masked read is in progress
type KeyHandler func(Key)
