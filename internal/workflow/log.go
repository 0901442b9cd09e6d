package workflow

import (
	"context"
	"fmt"
	"strings"
)

// GraphLog shows the commit graph in the given pretty format. args are
// appended to git log unchanged.
func (e *Engine) GraphLog(ctx context.Context, format string, args []string) error {
	gitArgs := append([]string{"log", "--graph", "--format=" + format}, args...)
	if err := e.git.Run(ctx, gitArgs...); err != nil {
		return fmt.Errorf("graphlog: %w", err)
	}
	return nil
}

// BranchLog shows the first-parent history of a branch. The first argument
// names the branch unless it starts with "-"; without one the current
// branch is used. Remaining args are appended to git log.
func (e *Engine) BranchLog(ctx context.Context, format string, args []string) error {
	var branch string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		branch, args = args[0], args[1:]
	} else {
		current, err := e.inv.CurrentBranch(ctx)
		if err != nil {
			return err
		}
		branch = current
	}

	gitArgs := append([]string{"log", "--first-parent", "--format=" + format, branch}, args...)
	if err := e.git.Run(ctx, gitArgs...); err != nil {
		return fmt.Errorf("branchlog %s: %w", branch, err)
	}
	return nil
}
