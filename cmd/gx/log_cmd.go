package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gx/internal/config"
)

func newGraphLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "graphlog [log args...]",
		Aliases:            []string{"gl"},
		DisableFlagParsing: true,
		Long: `Show the commit graph.

Arguments are passed to git log. The format comes from [log] graph_format.`,
		Example: `  gx graphlog
  gx graphlog --all -n 20
  gx graphlog -- -v        # pass -v to git log instead of gx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, help := passthroughArgs(args)
			if help {
				return cmd.Help()
			}

			ctx := cmd.Context()
			engine, _, err := newEngine(ctx)
			if err != nil {
				return err
			}
			return engine.GraphLog(ctx, config.FromContext(ctx).Log.GraphFormat, args)
		},
	}
}

func newBranchLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "branchlog [branch] [log args...]",
		Aliases:            []string{"bl"},
		DisableFlagParsing: true,
		Long: `Show the first-parent history of a branch.

The first argument names the branch unless it starts with "-"; without one
the current branch is shown. Remaining arguments are passed to git log.
The format comes from [log] branch_format.`,
		Example: `  gx branchlog
  gx branchlog main -n 10
  gx branchlog --since=1.week`,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, help := passthroughArgs(args)
			if help {
				return cmd.Help()
			}

			ctx := cmd.Context()
			engine, _, err := newEngine(ctx)
			if err != nil {
				return err
			}
			return engine.BranchLog(ctx, config.FromContext(ctx).Log.BranchFormat, args)
		},
	}
}
