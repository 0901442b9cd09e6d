package git

import (
	"context"
	"fmt"
)

// DefaultRemote is the primary remote assumed when none is configured.
const DefaultRemote = "origin"

// Snapshot is the branch state captured once at the start of an operation.
type Snapshot struct {
	Current  string
	Default  string
	Local    []string  // current branch first
	Remote   BranchSet // tracked branches of the primary remote
	Tracking BranchSet // local branches with an upstream on the primary remote
}

// Inventory answers branch and remote queries against one repository.
type Inventory struct {
	git    Runner
	remote string
}

// NewInventory returns an Inventory using remote as the primary remote.
func NewInventory(r Runner, remote string) *Inventory {
	if remote == "" {
		remote = DefaultRemote
	}
	return &Inventory{git: r, remote: remote}
}

// Remote returns the primary remote name.
func (inv *Inventory) Remote() string {
	return inv.remote
}

// CurrentBranch returns the abbreviated name of HEAD.
func (inv *Inventory) CurrentBranch(ctx context.Context) (string, error) {
	lines, err := inv.git.Lines(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("get current branch: %w", err)
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("get current branch: %w: empty output", ErrUnexpectedOutput)
	}
	return lines[0], nil
}

// DefaultBranch returns the branch the primary remote's HEAD points to.
func (inv *Inventory) DefaultBranch(ctx context.Context) (string, error) {
	lines, err := inv.git.Lines(ctx, "symbolic-ref", "--short", "refs/remotes/"+inv.remote+"/HEAD")
	if err != nil {
		return "", fmt.Errorf("get default branch of %s: %w", inv.remote, err)
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("get default branch of %s: %w: empty output", inv.remote, ErrUnexpectedOutput)
	}
	return ParseDefaultBranch(lines[0])
}

// RemoteBranches returns the branches the primary remote reports as tracked.
func (inv *Inventory) RemoteBranches(ctx context.Context) ([]string, error) {
	lines, err := inv.git.Lines(ctx, "remote", "show", inv.remote)
	if err != nil {
		return nil, fmt.Errorf("list branches of %s: %w", inv.remote, err)
	}
	return ParseRemoteBranches(lines), nil
}

// LocalBranches lists local branches, current branch first. A non-empty
// merged restricts the list to branches merged into that ref.
func (inv *Inventory) LocalBranches(ctx context.Context, merged string) ([]string, error) {
	args := []string{"branch"}
	if merged != "" {
		args = append(args, "--merged", merged)
	}
	lines, err := inv.git.Lines(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("list local branches: %w", err)
	}
	return ParseLocalBranches(lines), nil
}

// TrackingBranches lists local branches tracking a branch of the primary remote.
func (inv *Inventory) TrackingBranches(ctx context.Context) ([]string, error) {
	lines, err := inv.git.Lines(ctx, "branch", "-vv")
	if err != nil {
		return nil, fmt.Errorf("list tracking branches: %w", err)
	}
	return ParseTrackingBranches(lines, inv.remote), nil
}

// ExtraRemotes lists configured remotes other than the primary one.
func (inv *Inventory) ExtraRemotes(ctx context.Context) ([]string, error) {
	lines, err := inv.git.Lines(ctx, "remote")
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}
	return ParseExtraRemotes(lines, inv.remote), nil
}

// Snapshot captures local, remote, tracking, default and current branches.
func (inv *Inventory) Snapshot(ctx context.Context) (Snapshot, error) {
	local, err := inv.LocalBranches(ctx, "")
	if err != nil {
		return Snapshot{}, err
	}
	remote, err := inv.RemoteBranches(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	tracking, err := inv.TrackingBranches(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	def, err := inv.DefaultBranch(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	current, err := inv.CurrentBranch(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Current:  current,
		Default:  def,
		Local:    local,
		Remote:   NewBranchSet(remote...),
		Tracking: NewBranchSet(tracking...),
	}, nil
}
