// Package git is gx's adapter to the git executable.
//
// Everything gx knows about a repository comes from git's own query
// commands, parsed line by line. The fragile text contract is kept in one
// place:
//
//   - [Runner] and [ExecRunner]: run git, either capturing the first block
//     of output lines or streaming output to the user
//   - [ParseLocalBranches], [ParseTrackingBranches], [ParseRemoteBranches],
//     [ParseDefaultBranch], [ParseExtraRemotes]: pure parsers over recorded
//     query output
//   - [Inventory]: branch and remote queries built on the parsers, and
//     [Inventory.Snapshot] capturing them once per operation
//   - [GetAlias], [SetAlias]: alias.* config keys
//
// [Repo] reads repository metadata (work tree root, metadata directory,
// HEAD) through go-git so callers can inspect a repository without
// spawning a process.
package git
