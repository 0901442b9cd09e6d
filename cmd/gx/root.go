package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	gxcmd "github.com/raphi011/gx/internal/cmd"
	"github.com/raphi011/gx/internal/config"
	"github.com/raphi011/gx/internal/git"
	"github.com/raphi011/gx/internal/log"
	"github.com/raphi011/gx/internal/output"
	"github.com/raphi011/gx/internal/workflow"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	chdir   string

	// Shared state resolved before a command runs
	workDir string
	logFile *lumberjack.Logger
)

// Command group IDs for organizing help output
const (
	GroupWorkflow = "workflow"
	GroupHistory  = "history"
	GroupSetup    = "setup"
)

// annotation set on commands that work outside a git installation
const annotationNoGit = "gx/no-git"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gx",
	Short: "Shortcuts for everyday git workflows",
	Long: `gx bundles the git command sequences of a branch-based workflow into
single operations.

Install it into a repository with "gx install" to use every operation as a
git alias, e.g. "git sync".`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE:          prepare,
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	ctx = config.WithConfig(ctx, &loadedCfg)
	ctx = output.WithPrinter(ctx, os.Stdout)

	err = rootCmd.ExecuteContext(ctx)
	cancel()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gx: %v\n", err)
		if errors.Is(err, workflow.ErrInvalidArgument) {
			fmt.Fprintln(os.Stderr, "Run 'gx -h' for help")
		}
	}
	os.Exit(exitCode(err))
}

// prepare resolves the working directory, merges the repository's local
// config and attaches the logger before any operation runs.
func prepare(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "__complete" {
		return nil
	}

	// Commands passing their arguments to git see global flags as args
	if cmd.DisableFlagParsing {
		n := leadingGlobalFlags(args)
		if err := cmd.Root().PersistentFlags().Parse(args[:n]); err != nil {
			return fmt.Errorf("%w: %v", workflow.ErrInvalidArgument, err)
		}
	}

	if verbose && quiet {
		return fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", workflow.ErrInvalidArgument)
	}

	dir, err := resolveWorkDir(chdir)
	if err != nil {
		return err
	}
	workDir = dir

	ctx := cmd.Context()
	cfg := config.FromContext(ctx)

	logger := log.New(os.Stderr, verbose, quiet)
	if cfg.Debug.LogFile != "" {
		logFile = &lumberjack.Logger{
			Filename:   cfg.Debug.LogFile,
			MaxSize:    cfg.Debug.MaxSizeMB,
			MaxBackups: cfg.Debug.MaxBackups,
		}
		logger = logger.WithFile(logFile)
	}

	if repo, err := git.OpenRepo(workDir); err == nil {
		local, err := config.LoadLocal(repo.Root())
		if err != nil {
			logger.Printf("Warning: %v\n", err)
		} else {
			cfg = config.MergeLocal(cfg, local)
		}
	}
	logger.Debug("config", "remote", cfg.Remote, "dir", workDir)

	ctx = log.WithLogger(ctx, logger)
	ctx = config.WithConfig(ctx, cfg)
	cmd.SetContext(ctx)

	if cmd.Annotations[annotationNoGit] != "" {
		return nil
	}
	return git.CheckGit()
}

// resolveWorkDir returns the absolute directory gx operates in, honoring -C.
func resolveWorkDir(dir string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	if dir == "" {
		return cwd, nil
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cwd, dir)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: -C %s: %v", workflow.ErrInvalidArgument, dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: -C %s: not a directory", workflow.ErrInvalidArgument, dir)
	}
	return dir, nil
}

// exitCode maps an error to the process exit status: the code of a failed
// git process, 2 for invalid arguments, 1 otherwise.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *gxcmd.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	if errors.Is(err, workflow.ErrInvalidArgument) {
		return 2
	}
	return 1
}

// newEngine returns an engine operating on the work tree containing workDir.
func newEngine(ctx context.Context) (*workflow.Engine, *git.Repo, error) {
	repo, err := git.OpenRepo(workDir)
	if err != nil {
		return nil, nil, err
	}
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	r := git.NewExecRunner(repo.Root())
	r.Stdout = out.Writer()
	return workflow.New(r, cfg.Remote, repo), repo, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVarP(&chdir, "directory", "C", "", "Run as if gx was started in `path`")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", workflow.ErrInvalidArgument, err)
	})

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupWorkflow, Title: "Workflow Commands:"},
		&cobra.Group{ID: GroupHistory, Title: "History Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	for _, info := range operations {
		rootCmd.AddCommand(newOperationCmd(info))
	}
}
