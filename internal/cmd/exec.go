// Package cmd provides helpers for executing shell commands with proper error handling.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/gx/internal/log"
)

// ExitError is returned when a command could not be started or exited
// with a non-zero status.
type ExitError struct {
	Name   string
	Args   []string
	Code   int    // process exit code, -1 if it never ran
	Stderr string // trimmed stderr, empty when stderr was streamed
	Err    error
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s %s: %v", e.Name, strings.Join(e.Args, " "), e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// RunContext executes a command and returns stderr in the error message if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr
	return run(ctx, c, &stderr)
}

// OutputContext executes a command and returns stdout, with stderr in the
// error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := run(ctx, c, &stderr); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// StreamContext executes a command with its output connected to the given
// writers. Passing an *os.File lets the child see the terminal directly.
func StreamContext(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdout = stdout
	c.Stderr = stderr
	return run(ctx, c, nil)
}

func run(ctx context.Context, c *exec.Cmd, stderr *bytes.Buffer) error {
	done := log.FromContext(ctx).Command(c.Dir, c.Args[0], c.Args[1:]...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	e := &ExitError{Name: c.Args[0], Args: c.Args[1:], Code: -1, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		e.Code = exitErr.ExitCode()
	}
	if stderr != nil {
		e.Stderr = strings.TrimSpace(stderr.String())
	}
	return e
}
