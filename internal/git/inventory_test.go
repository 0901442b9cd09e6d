package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/gx/internal/git/gittest"
)

func stubRepo() *gittest.Runner {
	return gittest.New().
		Stub("branch", "feature", "* main", "old").
		Stub("remote show origin",
			"* remote origin",
			"HEAD branch: main",
			"Remote branches:",
			"feature tracked",
			"main    tracked",
			"new-one tracked",
		).
		Stub("branch -vv",
			"feature 1111111 [origin/feature] Feature",
			"* main  2222222 [origin/main: ahead 1] Main",
			"old     3333333 [origin/old: gone] Old",
		).
		Stub("symbolic-ref --short refs/remotes/origin/HEAD", "origin/main").
		Stub("rev-parse --abbrev-ref HEAD", "main").
		Stub("remote", "origin", "upstream")
}

func TestInventory_Snapshot(t *testing.T) {
	t.Parallel()

	inv := NewInventory(stubRepo(), "")
	snap, err := inv.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "main", snap.Current)
	assert.Equal(t, "main", snap.Default)
	assert.Equal(t, []string{"main", "feature", "old"}, snap.Local)
	assert.Equal(t, []string{"feature", "main", "new-one"}, snap.Remote.Sorted())
	assert.Equal(t, []string{"feature", "main", "old"}, snap.Tracking.Sorted())
}

func TestInventory_DefaultRemote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "origin", NewInventory(gittest.New(), "").Remote())
	assert.Equal(t, "gh", NewInventory(gittest.New(), "gh").Remote())
}

func TestInventory_LocalBranchesMerged(t *testing.T) {
	t.Parallel()

	r := gittest.New().Stub("branch --merged origin/main", "merged-a", "* main")
	branches, err := NewInventory(r, "origin").LocalBranches(context.Background(), "origin/main")
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "merged-a"}, branches)
}

func TestInventory_ExtraRemotes(t *testing.T) {
	t.Parallel()

	remotes, err := NewInventory(stubRepo(), "origin").ExtraRemotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"upstream"}, remotes)
}

func TestInventory_Errors(t *testing.T) {
	t.Parallel()

	t.Run("query failure propagates", func(t *testing.T) {
		t.Parallel()
		failure := gittest.ExitError(128, "fatal: ref refs/remotes/origin/HEAD is not a symbolic ref")
		r := stubRepo().Fail("symbolic-ref --short refs/remotes/origin/HEAD", failure)

		_, err := NewInventory(r, "origin").Snapshot(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, failure)
		assert.Contains(t, err.Error(), "default branch")
	})

	t.Run("empty current branch output", func(t *testing.T) {
		t.Parallel()
		r := gittest.New().Stub("rev-parse --abbrev-ref HEAD")

		_, err := NewInventory(r, "origin").CurrentBranch(context.Background())
		assert.True(t, errors.Is(err, ErrUnexpectedOutput))
	})
}
