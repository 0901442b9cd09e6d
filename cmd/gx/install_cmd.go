package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/gx/internal/config"
	"github.com/raphi011/gx/internal/git"
	"github.com/raphi011/gx/internal/log"
	"github.com/raphi011/gx/internal/output"
	"github.com/raphi011/gx/internal/ui/prompt"
	"github.com/raphi011/gx/internal/ui/static"
	"github.com/raphi011/gx/internal/ui/styles"
	"github.com/raphi011/gx/internal/workflow"
)

// errOverwriteRefused is returned when existing aliases would be replaced
// without confirmation.
var errOverwriteRefused = errors.New("existing aliases differ, rerun with --force to overwrite them")

func newInstallCmd() *cobra.Command {
	var (
		force  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:  "install [repository-path]",
		Args:  maxArgs(1),
		Long: `Install gx into a repository and register every operation as a git alias.

The running executable is copied into the repository's metadata directory
(<git-common-dir>/<install.dir>/gx) and one alias per operation is set in
the repository config, so "git sync" runs "gx sync". Alias names get the
configured install.prefix.

Aliases that already exist with a different value are only overwritten
after confirmation, or with --force when not running in a terminal.`,
		Example: `  gx install                 # install into the current repository
  gx install ~/src/app       # install into another repository
  gx install --dry-run       # show what would change
  gx install --force         # overwrite conflicting aliases`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			path := workDir
			if len(args) == 1 {
				path = args[0]
				if !filepath.IsAbs(path) {
					path = filepath.Join(workDir, path)
				}
			}

			repo, err := git.OpenRepo(path)
			if err != nil {
				return err
			}

			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate gx executable: %w", err)
			}
			if resolved, err := filepath.EvalSymlinks(exe); err == nil {
				exe = resolved
			}

			r := git.NewExecRunner(repo.Root())
			engine := workflow.New(r, cfg.Remote, repo)

			plan, err := engine.PlanInstall(ctx, workflow.InstallOptions{
				GitDir:     repo.CommonDir(),
				Dir:        cfg.Install.Dir,
				Prefix:     cfg.Install.Prefix,
				Operations: aliasOperations(),
				Executable: exe,
			})
			if err != nil {
				return err
			}

			out.Printf("Install %s %s %s\n\n", plan.Source, styles.SymbolArrow, plan.Target)
			out.Styled(renderInstallPlan(plan))

			if dryRun {
				return nil
			}

			if conflicts := plan.Conflicts(); len(conflicts) > 0 && !force {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return errOverwriteRefused
				}
				res, err := prompt.Confirm(fmt.Sprintf("Overwrite %d existing alias(es)?", len(conflicts)))
				if err != nil {
					return err
				}
				if !res.Confirmed {
					l.Println("Install cancelled")
					return nil
				}
			}

			if err := engine.ApplyInstall(ctx, plan); err != nil {
				return err
			}
			l.Printf("%s Installed %d operations, try \"git %smore\"\n",
				styles.SuccessStyle.Render(styles.SymbolCheck), len(plan.Aliases), cfg.Install.Prefix)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing aliases without asking")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the plan without changing anything")

	return cmd
}

// renderInstallPlan renders the alias changes of plan as a table.
func renderInstallPlan(plan workflow.InstallPlan) string {
	rows := make([][]string, 0, len(plan.Aliases))
	for _, a := range plan.Aliases {
		rows = append(rows, []string{"alias." + a.Name, aliasStatus(a)})
	}
	return static.RenderTable([]string{"ALIAS", "STATUS"}, rows)
}

func aliasStatus(a workflow.AliasChange) string {
	switch {
	case !a.Exists:
		return styles.SuccessStyle.Render("new")
	case a.Unchanged():
		return styles.MutedStyle.Render("unchanged")
	default:
		return styles.WarningStyle.Render(styles.SymbolWarn+" overwrite") + styles.MutedStyle.Render(" (was "+a.Old+")")
	}
}
