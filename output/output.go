package output

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to a single writer
type Printer struct {
	w io.Writer

	bannerStyle  lipgloss.Style
	invalidStyle lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	stepStyle    lipgloss.Style

	verbose atomic.Bool
}

// New creates a Printer whose color support is detected from w
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:            w,
		bannerStyle:  r.NewStyle().Bold(true),
		invalidStyle: r.NewStyle().Foreground(lipgloss.Color("1")),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("6")),
		stepStyle:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.w
}

// SetVerbose enables or disables Verbose output
func (p *Printer) SetVerbose(v bool) {
	p.verbose.Store(v)
}

// Write passes text through unstyled, so a Printer can stand in for its
// writer (prompts are written this way).
func (p *Printer) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

// Banner prints a question's message line in bold
func (p *Printer) Banner(msg string) {
	p.println(p.bannerStyle, msg)
}

// Invalid prints a rejected-reply message in red
func (p *Printer) Invalid(msg string) {
	p.println(p.invalidStyle, msg)
}

// Success prints a success message with 🔥 emoji and green color.
// Use this for completed operations.
func (p *Printer) Success(msg string) {
	p.println(p.successStyle, "🔥 "+msg)
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
func (p *Printer) Error(msg string) {
	p.println(p.errorStyle, "❌ "+msg)
}

// Info prints an informational message with ℹ️ emoji and cyan color
func (p *Printer) Info(msg string) {
	p.println(p.infoStyle, "ℹ️  "+msg)
}

// Step prints an indented step message in gray
func (p *Printer) Step(msg string) {
	p.println(p.stepStyle, "   "+msg)
}

// Verbose prints a debug message only if verbose mode is enabled
func (p *Printer) Verbose(msg string) {
	if p.verbose.Load() {
		p.println(p.stepStyle, "🔍 "+msg)
	}
}

func (p *Printer) println(style lipgloss.Style, msg string) {
	_, _ = fmt.Fprintln(p.w, style.Render(msg))
}

var std = New(os.Stdout)

// Default returns the stdout Printer used by the package-level functions
func Default() *Printer { return std }

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) { std.SetVerbose(v) }

// Success prints a success message on stdout
func Success(msg string) { std.Success(msg) }

// Error prints an error message on stdout
func Error(msg string) { std.Error(msg) }

// Info prints an informational message on stdout
func Info(msg string) { std.Info(msg) }

// Step prints an indented step message on stdout
func Step(msg string) { std.Step(msg) }

// Verbose prints a debug message on stdout when verbose mode is enabled
func Verbose(msg string) { std.Verbose(msg) }
