package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/gx/internal/cmd"
)

// GetAlias returns the value of alias.<name>. The bool is false when the
// alias is not set.
func GetAlias(ctx context.Context, r Runner, name string) (string, bool, error) {
	lines, err := r.Lines(ctx, "config", "--get", "alias."+name)
	if err != nil {
		// Exit code 1 means the key doesn't exist
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) && exitErr.Code == 1 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read alias %s: %w", name, err)
	}
	return strings.Join(lines, "\n"), true, nil
}

// SetAlias writes alias.<name> to the repository config.
func SetAlias(ctx context.Context, r Runner, name, value string) error {
	if err := r.Run(ctx, "config", "alias."+name, value); err != nil {
		return fmt.Errorf("set alias %s: %w", name, err)
	}
	return nil
}
