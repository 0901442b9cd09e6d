package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		if p == nil {
			t.Fatal("FromContext returned nil")
		}
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Printf("alias %s", "sync")
	if got := buf.String(); got != "alias sync" {
		t.Errorf("Printf() wrote %q, want %q", got, "alias sync")
	}
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Println("sync")
	p.Println("amend")
	want := "sync\namend\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_Styled(t *testing.T) {
	t.Parallel()

	t.Run("strips ansi for non-terminal writer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := &Printer{w: &buf, environ: []string{"TERM=dumb"}}

		p.Styled("\x1b[1msync\x1b[0m\n")
		if got := buf.String(); got != "sync\n" {
			t.Errorf("Styled() wrote %q, want %q", got, "sync\n")
		}
	})

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := &Printer{w: &buf, environ: nil}

		p.Styled("amend  Amend the last commit\n")
		if got := buf.String(); got != "amend  Amend the last commit\n" {
			t.Errorf("Styled() wrote %q", got)
		}
	})
}
