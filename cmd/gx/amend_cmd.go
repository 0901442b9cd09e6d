package main

import (
	"github.com/spf13/cobra"
)

func newAmendCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "amend",
		Args: maxArgs(0),
		Long: `Fold the staged changes into the last commit.

The commit message, author and author date of the last commit are kept.
Stage changes with "git add" first.`,
		Example: `  git add -u && gx amend`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			engine, _, err := newEngine(ctx)
			if err != nil {
				return err
			}
			return engine.Amend(ctx)
		},
	}
}
