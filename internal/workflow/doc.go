// Package workflow implements gx's composite operations on top of the git
// adapter.
//
// Each operation is a short, fixed sequence of git invocations run through
// a [git.Runner]. Steps run strictly in order and nothing is rolled back:
// when a step fails, the effects of earlier steps stay in place and the
// error is returned unchanged (wrapped with context).
//
//   - [Engine.Sync]: publish, track, retrieve, prune and push in one go
//   - [Engine.Retrieve]: pull from the right remote or fetch everything and
//     merge, depending on branch and remote topology
//   - [Engine.PullMerge]: bring current and target branch up to date, then
//     merge the target
//   - [Engine.Amend], [Engine.GraphLog], [Engine.BranchLog]: thin wrappers
//   - [Engine.PlanInstall], [Engine.ApplyInstall]: install gx as git aliases
package workflow
