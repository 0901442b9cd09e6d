package config

import "os"

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil. GX_REMOTE still wins over
// a local remote.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	if local.Remote != "" && os.Getenv("GX_REMOTE") == "" {
		merged.Remote = local.Remote
	}
	if local.Sync.All != nil {
		merged.Sync.All = *local.Sync.All
	}
	if local.Sync.Prune != nil {
		merged.Sync.Prune = *local.Sync.Prune
	}
	if local.Log.GraphFormat != "" {
		merged.Log.GraphFormat = local.Log.GraphFormat
	}
	if local.Log.BranchFormat != "" {
		merged.Log.BranchFormat = local.Log.BranchFormat
	}

	return &merged
}
