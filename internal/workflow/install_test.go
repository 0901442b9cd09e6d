package workflow

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/gx/internal/git/gittest"
)

func writeExecutable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gx-build")
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
	return path
}

func notSet(r *gittest.Runner, names ...string) {
	for _, n := range names {
		r.Fail("config --get alias."+n, gittest.ExitError(1, "", "config", "--get", "alias."+n))
	}
}

func TestPlanInstall(t *testing.T) {
	t.Parallel()

	gitDir := t.TempDir()
	exe := writeExecutable(t, "binary")
	target := filepath.Join(gitDir, "tools", "gx")

	r := gittest.New().
		Stub("config --get alias.g-sync", AliasValue(target, "sync")).
		Stub("config --get alias.g-amend", "commit --amend --no-edit")
	notSet(r, "g-more")
	e := New(r, "origin", nil)

	plan, err := e.PlanInstall(context.Background(), InstallOptions{
		GitDir:     gitDir,
		Dir:        "tools",
		Prefix:     "g-",
		Operations: []string{"sync", "amend", "more"},
		Executable: exe,
	})
	require.NoError(t, err)

	assert.Equal(t, target, plan.Target)
	require.Len(t, plan.Aliases, 3)

	assert.True(t, plan.Aliases[0].Unchanged())
	assert.False(t, plan.Aliases[0].Conflicts())

	assert.True(t, plan.Aliases[1].Conflicts())
	assert.Equal(t, "commit --amend --no-edit", plan.Aliases[1].Old)

	assert.False(t, plan.Aliases[2].Exists)
	assert.Equal(t, `!"`+target+`" more`, plan.Aliases[2].New)

	conflicts := plan.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "g-amend", conflicts[0].Name)

	// planning never touches the filesystem
	_, err = os.Stat(filepath.Dir(target))
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, r.CallsWithPrefix("config alias."))
}

func TestPlanInstall_ReadFailure(t *testing.T) {
	t.Parallel()

	r := gittest.New().Fail("config --get alias.sync", gittest.ExitError(3, "error: invalid config file", "config"))
	e := New(r, "origin", nil)

	_, err := e.PlanInstall(context.Background(), InstallOptions{
		GitDir:     t.TempDir(),
		Operations: []string{"sync"},
		Executable: writeExecutable(t, "x"),
	})
	require.ErrorContains(t, err, "invalid config file")
}

func TestPlanInstall_MissingGitDir(t *testing.T) {
	t.Parallel()

	e := New(gittest.New(), "origin", nil)
	_, err := e.PlanInstall(context.Background(), InstallOptions{Executable: "/bin/gx"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestApplyInstall(t *testing.T) {
	t.Parallel()

	gitDir := t.TempDir()
	exe := writeExecutable(t, "new binary")
	target := filepath.Join(gitDir, "gx", "gx")

	// an older copy is replaced
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("old binary"), 0755))

	r := gittest.New().Stub("config --get alias.sync", AliasValue(target, "sync"))
	notSet(r, "amend")
	e := New(r, "origin", nil)

	plan, err := e.PlanInstall(context.Background(), InstallOptions{
		GitDir:     gitDir,
		Operations: []string{"sync", "amend"},
		Executable: exe,
	})
	require.NoError(t, err)
	require.NoError(t, e.ApplyInstall(context.Background(), plan))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new binary", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	// only the alias that differs is written
	assert.Equal(t, []string{"config alias.amend " + AliasValue(target, "amend")}, r.CallsWithPrefix("config alias."))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestApplyInstall_SameFile(t *testing.T) {
	t.Parallel()

	gitDir := t.TempDir()
	target := filepath.Join(gitDir, "gx", "gx")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("running"), 0755))

	r := gittest.New()
	notSet(r, "sync")
	e := New(r, "origin", nil)

	// reinstalling from the installed copy itself
	plan, err := e.PlanInstall(context.Background(), InstallOptions{
		GitDir:     gitDir,
		Operations: []string{"sync"},
		Executable: target,
	})
	require.NoError(t, err)
	require.NoError(t, e.ApplyInstall(context.Background(), plan))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "running", string(data))
	assert.Len(t, r.CallsWithPrefix("config alias.sync"), 1)
}
