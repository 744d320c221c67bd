package cli

import (
	"fmt"
	"io"
	"os"
)

// Status prints the glyph-prefixed status lines commands emit while
// they work. Keeping the glyphs in one place keeps the text output
// greppable across commands.
type Status struct {
	w io.Writer
}

// NewStatus creates a status printer that writes to w.
// If w is nil, it defaults to os.Stdout.
func NewStatus(w io.Writer) *Status {
	if w == nil {
		w = os.Stdout
	}
	return &Status{w: w}
}

// Okf prints a success line.
func (s *Status) Okf(format string, args ...any) {
	fmt.Fprintf(s.w, "✓ "+format+"\n", args...)
}

// Failf prints an error line.
func (s *Status) Failf(format string, args ...any) {
	fmt.Fprintf(s.w, "✗ "+format+"\n", args...)
}

// Warnf prints a warning line.
func (s *Status) Warnf(format string, args ...any) {
	fmt.Fprintf(s.w, "⚠  "+format+"\n", args...)
}

// Printf prints an unprefixed line.
func (s *Status) Printf(format string, args ...any) {
	fmt.Fprintf(s.w, format+"\n", args...)
}

// Blank prints an empty line.
func (s *Status) Blank() {
	fmt.Fprintln(s.w)
}
