package workflow

import (
	"context"
	"fmt"

	"github.com/raphi011/gx/internal/git"
	"github.com/raphi011/gx/internal/log"
)

// SyncOptions controls Sync.
type SyncOptions struct {
	All   bool // track every remote branch without a local counterpart
	Prune bool // delete local tracking branches whose remote branch is gone
}

// SyncResult reports what Sync changed.
type SyncResult struct {
	Branch    string
	Published bool     // branch was pushed with --set-upstream
	Created   []string // new local tracking branches
	Deleted   []string // pruned local branches
	Pushed    bool
}

// Sync reconciles the current branch with its remote counterpart and,
// depending on opts, the set of local branches with the remote's.
func (e *Engine) Sync(ctx context.Context, opts SyncOptions) (SyncResult, error) {
	l := log.FromContext(ctx)
	remote := e.inv.Remote()

	snap, err := e.inv.Snapshot(ctx)
	if err != nil {
		return SyncResult{}, err
	}
	if snap.Current == "HEAD" {
		return SyncResult{}, ErrDetachedHead
	}
	l.Debug("sync snapshot", "current", snap.Current, "default", snap.Default,
		"local", len(snap.Local), "remote", len(snap.Remote), "tracking", len(snap.Tracking))

	res := SyncResult{Branch: snap.Current}

	// A new branch must exist upstream before anything is fetched or merged.
	if !snap.Tracking.Has(snap.Current) {
		l.Printf("Publishing %s to %s\n", snap.Current, remote)
		if err := e.git.Run(ctx, "push", "--set-upstream", remote, snap.Current); err != nil {
			return res, fmt.Errorf("publish %s: %w", snap.Current, err)
		}
		snap.Tracking.Add(snap.Current)
		res.Published = true
	}

	if opts.All {
		missing := snap.Remote.Minus(git.NewBranchSet(snap.Local...)).Sorted()
		for _, b := range missing {
			l.Printf("Tracking %s/%s\n", remote, b)
			if err := e.git.Run(ctx, "branch", "--track", b, remote+"/"+b); err != nil {
				return res, fmt.Errorf("track %s/%s: %w", remote, b, err)
			}
			res.Created = append(res.Created, b)
		}
	}

	if err := e.Retrieve(ctx, snap.Current, snap.Default, false); err != nil {
		return res, err
	}

	if opts.Prune {
		gone := snap.Tracking.Minus(snap.Remote, git.NewBranchSet(snap.Current)).Sorted()
		for _, b := range gone {
			l.Printf("Deleting %s (gone from %s)\n", b, remote)
			if err := e.git.Run(ctx, "branch", "-D", b); err != nil {
				return res, fmt.Errorf("delete %s: %w", b, err)
			}
			res.Deleted = append(res.Deleted, b)
		}
	}

	if snap.Tracking.Has(snap.Current) {
		if err := e.git.Run(ctx, "push"); err != nil {
			return res, fmt.Errorf("push %s: %w", snap.Current, err)
		}
		res.Pushed = true
	}

	return res, nil
}
