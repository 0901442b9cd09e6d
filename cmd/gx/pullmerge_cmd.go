package main

import (
	"github.com/spf13/cobra"
)

func newPullMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "pullmerge <branch> [merge args...]",
		Aliases:            []string{"pm"},
		DisableFlagParsing: true,
		Long: `Merge an up-to-date branch into the up-to-date current branch.

Pulls the current branch, checks out <branch> and pulls it, switches back
and merges <branch>. Remaining arguments are passed to git merge.

On the default branch, the first extra remote (e.g. "upstream") is pulled
instead of the branch's upstream. The first failing step stops the
sequence; nothing is undone.`,
		Example: `  gx pullmerge main
  gx pullmerge main --no-ff
  gx pullmerge release -m "Merge release"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, help := passthroughArgs(args)
			if help {
				return cmd.Help()
			}

			var target string
			if len(args) > 0 {
				target, args = args[0], args[1:]
			}

			ctx := cmd.Context()
			engine, _, err := newEngine(ctx)
			if err != nil {
				return err
			}
			return engine.PullMerge(ctx, target, args)
		},
	}
}
