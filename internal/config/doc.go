// Package config handles loading and validation of gx configuration.
//
// # Configuration Sources (highest priority first)
//
//   - GX_REMOTE env var: primary remote name
//   - .gx.toml at the work tree root of the current repository
//   - ~/.config/gx/config.toml
//   - Default values
//
// # Keys
//
//	remote = "origin"        # primary remote
//
//	[sync]
//	all = false              # "gx sync" behaves as if --all was given
//	prune = false            # "gx sync" behaves as if --prune was given
//
//	[log]
//	graph_format = "..."     # git pretty format for "gx graphlog"
//	branch_format = "..."    # git pretty format for "gx branchlog"
//
//	[install]
//	dir = "gx"               # directory under .git receiving the gx binary
//	prefix = ""              # prefix for installed alias names
//
//	[debug]
//	log_file = "~/.cache/gx/gx.log"  # rotated log of every git invocation
//	max_size_mb = 5
//	max_backups = 3
//
// The per-repository file may set remote, [sync] and [log]; [install] and
// [debug] are global only.
package config
