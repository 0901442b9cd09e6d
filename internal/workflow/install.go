package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raphi011/gx/internal/git"
	"github.com/raphi011/gx/internal/log"
)

// BinaryName is the file name of the installed executable.
const BinaryName = "gx"

// InstallOptions describes where and how gx installs itself.
type InstallOptions struct {
	GitDir     string   // repository metadata directory
	Dir        string   // subdirectory of GitDir receiving the executable
	Prefix     string   // prepended to every alias name
	Operations []string // operations to alias, in order
	Executable string   // path of the running executable
}

// AliasChange is one alias an install would write.
type AliasChange struct {
	Name      string
	Operation string
	Old       string
	New       string
	Exists    bool
}

// Conflicts reports whether applying the change overwrites a different value.
func (c AliasChange) Conflicts() bool {
	return c.Exists && c.Old != c.New
}

// Unchanged reports whether the alias already has the desired value.
func (c AliasChange) Unchanged() bool {
	return c.Exists && c.Old == c.New
}

// InstallPlan is the computed effect of an install.
type InstallPlan struct {
	Source  string
	Target  string
	Aliases []AliasChange
}

// Conflicts returns the alias changes that overwrite existing values.
func (p InstallPlan) Conflicts() []AliasChange {
	var out []AliasChange
	for _, a := range p.Aliases {
		if a.Conflicts() {
			out = append(out, a)
		}
	}
	return out
}

// AliasValue returns the git alias definition running op through the
// executable at path.
func AliasValue(path, op string) string {
	return fmt.Sprintf("!\"%s\" %s", path, op)
}

// PlanInstall computes the copy target and the alias changes without
// modifying anything.
func (e *Engine) PlanInstall(ctx context.Context, opts InstallOptions) (InstallPlan, error) {
	if opts.GitDir == "" {
		return InstallPlan{}, fmt.Errorf("%w: repository metadata directory is required", ErrInvalidArgument)
	}
	if opts.Executable == "" {
		return InstallPlan{}, errors.New("install: path of the running executable is unknown")
	}
	dir := opts.Dir
	if dir == "" {
		dir = BinaryName
	}

	plan := InstallPlan{
		Source: opts.Executable,
		Target: filepath.Join(opts.GitDir, dir, BinaryName),
	}

	for _, op := range opts.Operations {
		name := opts.Prefix + op
		old, exists, err := git.GetAlias(ctx, e.git, name)
		if err != nil {
			return InstallPlan{}, err
		}
		plan.Aliases = append(plan.Aliases, AliasChange{
			Name:      name,
			Operation: op,
			Old:       old,
			New:       AliasValue(plan.Target, op),
			Exists:    exists,
		})
	}

	log.FromContext(ctx).Debug("install plan", "target", plan.Target,
		"aliases", len(plan.Aliases), "conflicts", len(plan.Conflicts()))
	return plan, nil
}

// ApplyInstall copies the executable into place and writes every alias
// that differs from its current value.
func (e *Engine) ApplyInstall(ctx context.Context, plan InstallPlan) error {
	l := log.FromContext(ctx)

	if err := copyExecutable(plan.Source, plan.Target); err != nil {
		return fmt.Errorf("install %s: %w", plan.Target, err)
	}
	l.Printf("Installed %s\n", plan.Target)

	for _, a := range plan.Aliases {
		if a.Unchanged() {
			l.Debug("alias unchanged", "name", a.Name)
			continue
		}
		if err := git.SetAlias(ctx, e.git, a.Name, a.New); err != nil {
			return err
		}
		l.Printf("Set alias %s\n", a.Name)
	}
	return nil
}

// copyExecutable writes src to dst through a temp file in the target
// directory so a running copy of dst is never truncated.
func copyExecutable(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+BinaryName+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0755); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
