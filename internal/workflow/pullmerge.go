package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/gx/internal/log"
)

// maxSuggestions limits "did you mean" candidates for a failed checkout
const maxSuggestions = 3

// PullMerge updates the current branch and target from their upstreams,
// then merges target into the current branch. mergeArgs are passed to
// git merge unchanged.
//
// Validation happens before any git process runs: target must be given
// and must differ from the current branch.
func (e *Engine) PullMerge(ctx context.Context, target string, mergeArgs []string) error {
	if target == "" {
		return fmt.Errorf("%w: a branch to merge is required", ErrInvalidArgument)
	}
	if e.head == nil {
		return fmt.Errorf("pullmerge: no repository metadata reader")
	}
	current, err := e.head.CurrentBranch()
	if err != nil {
		return err
	}
	if current == "HEAD" {
		return ErrDetachedHead
	}
	if target == current {
		return fmt.Errorf("%w: cannot merge %s into itself", ErrInvalidArgument, target)
	}

	l := log.FromContext(ctx)
	l.Debug("pullmerge", "current", current, "target", target, "args", strings.Join(mergeArgs, " "))

	def, err := e.inv.DefaultBranch(ctx)
	if err != nil {
		return err
	}

	if err := e.Retrieve(ctx, current, def, true); err != nil {
		return err
	}
	if err := e.checkout(ctx, target); err != nil {
		return err
	}
	if err := e.Retrieve(ctx, target, def, true); err != nil {
		return err
	}
	if err := e.checkout(ctx, current); err != nil {
		return err
	}

	args := append([]string{"merge", target}, mergeArgs...)
	if err := e.git.Run(ctx, args...); err != nil {
		return fmt.Errorf("merge %s into %s: %w", target, current, err)
	}
	return nil
}

func (e *Engine) checkout(ctx context.Context, branch string) error {
	err := e.git.Run(ctx, "checkout", branch)
	if err == nil {
		return nil
	}

	local, listErr := e.inv.LocalBranches(ctx, "")
	if listErr == nil {
		if s := suggestBranches(branch, local); len(s) > 0 {
			return fmt.Errorf("checkout %s: %w (did you mean %s?)", branch, err, strings.Join(s, ", "))
		}
	}
	return fmt.Errorf("checkout %s: %w", branch, err)
}

// suggestBranches returns up to maxSuggestions branches fuzzy-matching name,
// best match first.
func suggestBranches(name string, branches []string) []string {
	matches := fuzzy.Find(name, branches)
	var out []string
	for _, m := range matches {
		if m.Str == name {
			continue
		}
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
