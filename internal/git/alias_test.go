package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/gx/internal/git/gittest"
)

func TestGetAlias(t *testing.T) {
	t.Parallel()

	t.Run("set", func(t *testing.T) {
		t.Parallel()
		r := gittest.New().Stub("config --get alias.sync", `!"/repo/.git/gx/gx" sync`)
		value, ok, err := GetAlias(context.Background(), r, "sync")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `!"/repo/.git/gx/gx" sync`, value)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		r := gittest.New().Fail("config --get alias.sync", gittest.ExitError(1, ""))
		value, ok, err := GetAlias(context.Background(), r, "sync")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("other failure", func(t *testing.T) {
		t.Parallel()
		r := gittest.New().Fail("config --get alias.sync", gittest.ExitError(128, "fatal: not in a git directory"))
		_, _, err := GetAlias(context.Background(), r, "sync")
		assert.ErrorContains(t, err, "not in a git directory")
	})
}

func TestSetAlias(t *testing.T) {
	t.Parallel()

	r := gittest.New()
	require.NoError(t, SetAlias(context.Background(), r, "amend", `!"/x/gx" amend`))
	assert.Equal(t, []string{`config alias.amend !"/x/gx" amend`}, r.Calls())
}
