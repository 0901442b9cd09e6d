package config

import (
	"strings"
	"testing"
)

func TestLoadLocal(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		local, err := LoadLocal(t.TempDir())
		if err != nil || local != nil {
			t.Errorf("LoadLocal(empty dir) = %v, %v; want nil, nil", local, err)
		}
	})

	t.Run("parses overrides", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, LocalConfigFileName, `
remote = "upstream"

[sync]
all = true

[log]
branch_format = "%h %s"
`)
		local, err := LoadLocal(dir)
		if err != nil {
			t.Fatalf("LoadLocal = %v", err)
		}
		if local.Remote != "upstream" {
			t.Errorf("Remote = %q", local.Remote)
		}
		if local.Sync.All == nil || !*local.Sync.All {
			t.Errorf("Sync.All = %v, want true", local.Sync.All)
		}
		if local.Sync.Prune != nil {
			t.Errorf("Sync.Prune = %v, want unset", *local.Sync.Prune)
		}
		if local.Log.BranchFormat != "%h %s" {
			t.Errorf("BranchFormat = %q", local.Log.BranchFormat)
		}
	})

	t.Run("global-only section rejected", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, LocalConfigFileName, "[install]\nprefix = \"x\"\n")
		_, err := LoadLocal(dir)
		if err == nil || !strings.Contains(err.Error(), "unknown keys") {
			t.Errorf("LoadLocal error = %v, want unknown keys", err)
		}
	})

	t.Run("invalid remote", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, LocalConfigFileName, `remote = "a b"`)
		if _, err := LoadLocal(dir); err == nil {
			t.Error("LoadLocal = nil error, want invalid remote")
		}
	})
}
