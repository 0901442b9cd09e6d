package workflow

import (
	"context"
	"fmt"

	"github.com/raphi011/gx/internal/log"
)

// Retrieve brings branch up to date with its remote counterpart.
//
// On the default branch, when extra remotes exist, the first extra remote
// is pulled explicitly. Otherwise exclusive mode pulls the branch's own
// upstream, and non-exclusive mode fetches all remotes and merges
// FETCH_HEAD.
func (e *Engine) Retrieve(ctx context.Context, branch, defaultBranch string, exclusive bool) error {
	l := log.FromContext(ctx)

	var override []string
	if branch == defaultBranch {
		extras, err := e.inv.ExtraRemotes(ctx)
		if err != nil {
			return err
		}
		if len(extras) > 0 {
			override = []string{extras[0], branch}
		}
	}

	if exclusive || override != nil {
		l.Debug("pulling", "branch", branch, "exclusive", exclusive, "override", override)
		args := append([]string{"pull", "--prune"}, override...)
		if err := e.git.Run(ctx, args...); err != nil {
			return fmt.Errorf("pull %s: %w", branch, err)
		}
		return nil
	}

	l.Debug("fetching all remotes", "branch", branch)
	if err := e.git.Run(ctx, "fetch", "--all", "--prune", "--prune-tags"); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if err := e.git.Run(ctx, "merge", "FETCH_HEAD"); err != nil {
		return fmt.Errorf("merge fetched changes into %s: %w", branch, err)
	}
	return nil
}
