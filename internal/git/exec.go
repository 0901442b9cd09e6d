package git

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/raphi011/gx/internal/cmd"
)

// Runner executes git invocations.
type Runner interface {
	// Lines runs a query and returns the first contiguous block of
	// non-blank output lines, each trimmed.
	Lines(ctx context.Context, args ...string) ([]string, error)

	// Run executes a command whose output is meant for the user.
	Run(ctx context.Context, args ...string) error
}

// ExecRunner runs the git executable found in PATH.
type ExecRunner struct {
	Dir    string    // working directory, empty for the process cwd
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// NewExecRunner returns a runner operating in dir that streams to the
// process's stdout and stderr.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Lines implements Runner.
func (r *ExecRunner) Lines(ctx context.Context, args ...string) ([]string, error) {
	out, err := cmd.OutputContext(ctx, r.Dir, "git", args...)
	if err != nil {
		return nil, err
	}
	return firstBlock(string(out)), nil
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, args ...string) error {
	stdout, stderr := r.Stdout, r.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return cmd.StreamContext(ctx, r.Dir, stdout, stderr, "git", args...)
}

// firstBlock drops leading blank lines and returns the trimmed lines up to
// the next blank line.
func firstBlock(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(lines) > 0 {
				break
			}
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
