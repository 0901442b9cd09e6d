//go:build integration

package workflow

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/gx/internal/git"
)

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	c := exec.Command("git", args...)
	c.Dir = dir
	out, err := c.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return strings.TrimSpace(string(out))
}

// cloneWithOrigin creates a bare origin with main and feature branches and
// returns a fresh clone of it.
func cloneWithOrigin(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	origin := filepath.Join(root, "origin.git")
	seed := filepath.Join(root, "seed")
	clone := filepath.Join(root, "clone")

	runGit(t, root, "init", "--bare", "-b", "main", origin)
	runGit(t, root, "init", "-b", "main", seed)
	runGit(t, seed, "config", "user.email", "test@test.com")
	runGit(t, seed, "config", "user.name", "Test User")
	runGit(t, seed, "config", "commit.gpgsign", "false")
	require.NoError(t, os.WriteFile(filepath.Join(seed, "README.md"), []byte("# test\n"), 0644))
	runGit(t, seed, "add", "README.md")
	runGit(t, seed, "commit", "-m", "Initial commit")
	runGit(t, seed, "branch", "feature")
	runGit(t, seed, "remote", "add", "origin", origin)
	runGit(t, seed, "push", "origin", "main", "feature")

	runGit(t, root, "clone", origin, clone)
	runGit(t, clone, "config", "user.email", "test@test.com")
	runGit(t, clone, "config", "user.name", "Test User")
	return clone
}

func TestSync_Idempotent(t *testing.T) {
	t.Parallel()
	clone := cloneWithOrigin(t)

	r := &git.ExecRunner{Dir: clone, Stdout: io.Discard, Stderr: io.Discard}
	e := New(r, "origin", nil)
	ctx := context.Background()

	first, err := e.Sync(ctx, SyncOptions{All: true, Prune: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"feature"}, first.Created)

	head := runGit(t, clone, "rev-parse", "HEAD")
	branches := runGit(t, clone, "for-each-ref", "--format=%(refname) %(objectname)", "refs/heads")

	second, err := e.Sync(ctx, SyncOptions{All: true, Prune: true})
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Empty(t, second.Deleted)
	assert.False(t, second.Published)

	assert.Equal(t, head, runGit(t, clone, "rev-parse", "HEAD"))
	assert.Equal(t, branches, runGit(t, clone, "for-each-ref", "--format=%(refname) %(objectname)", "refs/heads"))
}

func TestSync_PublishesNewBranch(t *testing.T) {
	t.Parallel()
	clone := cloneWithOrigin(t)
	runGit(t, clone, "checkout", "-b", "topic")

	r := &git.ExecRunner{Dir: clone, Stdout: io.Discard, Stderr: io.Discard}
	res, err := New(r, "origin", nil).Sync(context.Background(), SyncOptions{})
	require.NoError(t, err)
	assert.True(t, res.Published)

	assert.Equal(t, "origin/topic", runGit(t, clone, "rev-parse", "--abbrev-ref", "topic@{upstream}"))
}
