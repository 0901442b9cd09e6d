package workflow

import (
	"context"
	"fmt"
)

// Amend folds the staged changes into the last commit, keeping its message,
// author and author date.
func (e *Engine) Amend(ctx context.Context) error {
	if err := e.git.Run(ctx, "commit", "--amend", "--reuse-message=HEAD"); err != nil {
		return fmt.Errorf("amend: %w", err)
	}
	return nil
}
