package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScriptedSession(t *testing.T, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	term, err := NewStdio(strings.NewReader(input), &out)
	require.NoError(t, err)
	return NewSession(term), &out
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Key
	}{
		{"runes", "ab", []Key{{Name: KeyRune, Rune: 'a'}, {Name: KeyRune, Rune: 'b'}}},
		{"unicode", "é", []Key{{Name: KeyRune, Rune: 'é'}}},
		{"enter lf", "\n", []Key{{Name: KeyEnter}}},
		{"enter crlf", "\r\nx", []Key{{Name: KeyEnter}, {Name: KeyRune, Rune: 'x'}}},
		{"lone cr", "\r", []Key{{Name: KeyEnter, Rune: '\r'}}},
		{"backspace", "\x7f\b", []Key{{Name: KeyBackspace}, {Name: KeyBackspace}}},
		{"ctrl c", "\x03", []Key{{Name: KeyInterrupt}}},
		{"ctrl d", "\x04", []Key{{Name: KeyEndOfInput}}},
		{"arrow key", "\x1b[Az", []Key{{Name: KeyOther}, {Name: KeyRune, Rune: 'z'}}},
		{"tab", "\t", []Key{{Name: KeyOther, Rune: '\t'}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tt.input))
			for _, want := range tt.want {
				got, err := readKey(r)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
			_, err := readKey(r)
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestLine(t *testing.T) {
	s, out := newScriptedSession(t, "US\r\nPacific\n")

	line, err := s.Line(" - country: ")
	require.NoError(t, err)
	assert.Equal(t, "US", line)

	line, err = s.Line(" - tz: ")
	require.NoError(t, err)
	assert.Equal(t, "Pacific", line)

	assert.Equal(t, " - country:  - tz: ", out.String())
}

func TestLineUnterminatedFinalLine(t *testing.T) {
	s, _ := newScriptedSession(t, "last")

	line, err := s.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = s.Line("> ")
	assert.ErrorIs(t, err, ErrClosed)
	assert.True(t, s.Closed(), "end of input closes the session")
}

func TestMasked(t *testing.T) {
	s, out := newScriptedSession(t, "sex\x7fcret\n")

	secret, err := s.Masked(" - password: ", '*')
	require.NoError(t, err)
	assert.Equal(t, "secret", secret)

	assert.NotContains(t, out.String(), "secret")
	assert.Equal(t,
		" - password: ***\r\x1b[2K - password: **"+"****"+"\r\n",
		out.String())
}

func TestMaskedDefaultMaskAndBackspaceOnEmpty(t *testing.T) {
	s, out := newScriptedSession(t, "\x7fab\n")

	secret, err := s.Masked("> ", 0)
	require.NoError(t, err)
	assert.Equal(t, "ab", secret)
	assert.Contains(t, out.String(), "**")
}

func TestMaskedInterruptClosesSession(t *testing.T) {
	s, _ := newScriptedSession(t, "ab\x03cd\n")

	_, err := s.Masked("> ", '*')
	assert.ErrorIs(t, err, ErrClosed)
	assert.True(t, s.Closed())

	_, err = s.Line("> ")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMaskedRestoresPreviousKeyHandler(t *testing.T) {
	s, _ := newScriptedSession(t, "pw\n")

	var seen []Key
	original := KeyHandler(func(k Key) { seen = append(seen, k) })
	s.SetKeyHandler(original)

	_, err := s.Masked("> ", '*')
	require.NoError(t, err)
	assert.Empty(t, seen, "the previous listener must not see masked keys")

	restored := s.SetKeyHandler(nil)
	require.NotNil(t, restored)
	restored(Key{Name: KeyEnter})
	assert.Len(t, seen, 1, "the previous listener is back in place")
}

// chunkedReader returns one chunk per Read call, like a terminal delivering
// input as it is typed
type chunkedReader struct {
	chunks []string
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks[0] = c.chunks[0][n:]
	if c.chunks[0] == "" {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

func TestMaskedCRLFSplitAcrossReads(t *testing.T) {
	var out bytes.Buffer
	term, err := NewStdio(&chunkedReader{chunks: []string{"pw\r", "\nnext\n"}}, &out)
	require.NoError(t, err)
	s := NewSession(term)

	pw, err := s.Masked("> ", '*')
	require.NoError(t, err)
	assert.Equal(t, "pw", pw)

	line, err := s.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "next", line, "the LF of a split CRLF must not read as an empty line")
}

func TestMaskedCRLFSplitBeforeNextKey(t *testing.T) {
	var out bytes.Buffer
	term, err := NewStdio(&chunkedReader{chunks: []string{"a\r", "\nb\n"}}, &out)
	require.NoError(t, err)
	s := NewSession(term)

	first, err := s.Masked("> ", '*')
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	second, err := s.Masked("> ", '*')
	require.NoError(t, err)
	assert.Equal(t, "b", second)
}

func TestMaskedThenLineShareInput(t *testing.T) {
	s, _ := newScriptedSession(t, "pw\nnext\n")

	pw, err := s.Masked("> ", '*')
	require.NoError(t, err)
	assert.Equal(t, "pw", pw)

	line, err := s.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}

// countingTerminal records Close calls
type countingTerminal struct {
	io.Writer
	mu     sync.Mutex
	closes int
}

func (c *countingTerminal) ReadLine() (string, error) { return "", io.EOF }
func (c *countingTerminal) ReadKey() (Key, error)     { return Key{}, io.EOF }
func (c *countingTerminal) Raw() (func(), error)      { return func() {}, nil }
func (c *countingTerminal) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
	return nil
}

func TestCloseIsIdempotentUnderRace(t *testing.T) {
	term := &countingTerminal{Writer: io.Discard}
	s := NewSession(term)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Close()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, term.closes)
	assert.True(t, s.Closed())
	select {
	case <-s.Done():
	default:
		t.Fatal("Done should be closed")
	}
}

func TestCloseUnblocksPendingLine(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	term, err := NewStdio(pr, io.Discard)
	require.NoError(t, err)
	s := NewSession(term)

	result := make(chan error, 1)
	go func() {
		_, err := s.Line("> ")
		result <- err
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.Close())

	select {
	case err := <-result:
		assert.True(t, errors.Is(err, ErrClosed), "got %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not unblock the pending read")
	}
}
