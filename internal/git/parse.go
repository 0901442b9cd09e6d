package git

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnexpectedOutput is returned when a git query prints something the
// parsers do not understand.
var ErrUnexpectedOutput = errors.New("unexpected git output")

// ParseLocalBranches parses `git branch` output. The branch marked with "*"
// is returned first; the marker is removed. Worktree markers ("+") are
// removed too, and detached HEAD entries like "(HEAD detached at 1a2b3c)"
// are skipped.
func ParseLocalBranches(lines []string) []string {
	var branches []string
	current := ""
	for _, line := range lines {
		isCurrent := strings.HasPrefix(line, "*")
		name := strings.TrimSpace(strings.TrimLeft(line, "*+"))
		if name == "" || strings.HasPrefix(name, "(") {
			continue
		}
		if isCurrent {
			current = name
			continue
		}
		branches = append(branches, name)
	}
	if current != "" {
		branches = slices.Insert(branches, 0, current)
	}
	return branches
}

// ParseTrackingBranches parses `git branch -vv` output and returns the local
// branches whose upstream lives on remote. Lines look like:
//
//	* main    1a2b3c4 [origin/main] Initial commit
//	  feature 5d6e7f8 [origin/feature: ahead 2] Add thing
//	  local   9a8b7c6 Not pushed yet
func ParseTrackingBranches(lines []string, remote string) []string {
	prefix := "[" + remote + "/"
	var branches []string
	for _, line := range lines {
		fields := strings.Fields(strings.TrimPrefix(line, "*"))
		if len(fields) < 3 {
			continue
		}
		upstream := fields[2]
		if !strings.HasPrefix(upstream, prefix) {
			continue
		}
		if strings.HasSuffix(upstream, "]") || strings.HasSuffix(upstream, ":") {
			branches = append(branches, fields[0])
		}
	}
	return branches
}

// ParseRemoteBranches parses the "Remote branches:" section of
// `git remote show <remote>` and returns the branches in state "tracked".
// Branches marked "new" or "stale" are ignored.
func ParseRemoteBranches(lines []string) []string {
	var branches []string
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == "tracked" {
			branches = append(branches, fields[0])
		}
	}
	return branches
}

// ParseDefaultBranch strips the remote prefix from a short symbolic ref
// such as "origin/main".
func ParseDefaultBranch(ref string) (string, error) {
	_, branch, ok := strings.Cut(strings.TrimSpace(ref), "/")
	if !ok || branch == "" {
		return "", fmt.Errorf("%w: default branch ref %q has no remote prefix", ErrUnexpectedOutput, ref)
	}
	return branch, nil
}

// ParseExtraRemotes returns the remotes other than primary, in listing order.
func ParseExtraRemotes(lines []string, primary string) []string {
	var remotes []string
	for _, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" || name == primary {
			continue
		}
		remotes = append(remotes, name)
	}
	return remotes
}
