// Package output provides context-aware output for gx.
//
// Stdout carries the primary result of an operation: git log listings that
// gx streams through, the operation table of "gx more" and the install plan.
// Diagnostics go to stderr via the log package.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w       io.Writer
	environ []string
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w, environ: os.Environ()}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Styled writes pre-rendered lipgloss output, downsampling its ANSI
// sequences to what the destination supports (none when piped).
func (p *Printer) Styled(s string) {
	w := colorprofile.NewWriter(p.w, p.environ)
	fmt.Fprint(w, s)
}

// Writer returns the underlying writer. Streaming subprocess output
// (git log) is connected directly to it so git can detect a terminal.
func (p *Printer) Writer() io.Writer {
	return p.w
}
