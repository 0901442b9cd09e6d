package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gx/internal/config"
	"github.com/raphi011/gx/internal/log"
	"github.com/raphi011/gx/internal/ui/styles"
	"github.com/raphi011/gx/internal/workflow"
)

func newSyncCmd() *cobra.Command {
	var (
		all   bool
		prune bool
	)

	cmd := &cobra.Command{
		Use:     "sync",
		Aliases: []string{"s"},
		Args:    maxArgs(0),
		Long: `Synchronize the current branch with the primary remote.

A branch without an upstream is published first. Then the branch is
updated: on the default branch with an extra remote configured (e.g. a
fork's "upstream"), that remote is pulled; otherwise all remotes are
fetched and the fetched head is merged. Finally the branch is pushed.

Defaults for --all and --prune come from the [sync] config section.`,
		Example: `  gx sync                # publish, update and push the current branch
  gx sync --all          # also create local branches for new remote ones
  gx sync --prune        # also delete local branches gone from the remote
  gx -C ~/src/app sync   # sync another repository`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			if !cmd.Flags().Changed("all") {
				all = cfg.Sync.All
			}
			if !cmd.Flags().Changed("prune") {
				prune = cfg.Sync.Prune
			}

			engine, _, err := newEngine(ctx)
			if err != nil {
				return err
			}

			res, err := engine.Sync(ctx, workflow.SyncOptions{All: all, Prune: prune})
			if err != nil {
				return err
			}

			l.Printf("%s %s is in sync with %s\n",
				styles.SuccessStyle.Render(styles.SymbolCheck), res.Branch, engine.Remote())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Track every remote branch without a local one")
	cmd.Flags().BoolVarP(&prune, "prune", "p", false, "Delete local branches whose remote branch is gone")

	return cmd
}
