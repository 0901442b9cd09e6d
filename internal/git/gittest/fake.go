// Package gittest provides a recording fake of git.Runner for tests.
package gittest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/raphi011/gx/internal/cmd"
)

// Runner is a git.Runner that answers queries from canned output and
// records every invocation. Commands are keyed by their space-joined args,
// e.g. "branch -vv".
type Runner struct {
	mu      sync.Mutex
	outputs map[string][]string
	errs    map[string]error
	calls   []string
}

// New returns an empty fake runner.
func New() *Runner {
	return &Runner{
		outputs: make(map[string][]string),
		errs:    make(map[string]error),
	}
}

// Stub sets the output lines returned for a query.
func (r *Runner) Stub(command string, lines ...string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs[command] = lines
	return r
}

// Fail makes command fail with err.
func (r *Runner) Fail(command string, err error) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs[command] = err
	return r
}

// Lines returns the stubbed output for args. Queries without a stub fail,
// so tests notice unexpected calls.
func (r *Runner) Lines(_ context.Context, args ...string) ([]string, error) {
	key := r.record(args)
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.errs[key]; ok {
		return nil, err
	}
	lines, ok := r.outputs[key]
	if !ok {
		return nil, fmt.Errorf("gittest: no stub for %q", key)
	}
	return lines, nil
}

// Run records args and succeeds unless a failure was registered.
func (r *Runner) Run(_ context.Context, args ...string) error {
	key := r.record(args)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errs[key]
}

// Calls returns every recorded invocation in order.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// CallsWithPrefix returns recorded invocations starting with prefix.
func (r *Runner) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range r.Calls() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (r *Runner) record(args []string) string {
	key := strings.Join(args, " ")
	r.mu.Lock()
	r.calls = append(r.calls, key)
	r.mu.Unlock()
	return key
}

// ExitError builds the error a failed git invocation returns.
func ExitError(code int, stderr string, args ...string) error {
	return &cmd.ExitError{
		Name:   "git",
		Args:   args,
		Code:   code,
		Stderr: stderr,
		Err:    fmt.Errorf("exit status %d", code),
	}
}
