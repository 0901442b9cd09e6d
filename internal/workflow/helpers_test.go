package workflow

import (
	"github.com/raphi011/gx/internal/git/gittest"
)

type staticHead struct {
	branch string
	err    error
}

func (h staticHead) CurrentBranch() (string, error) {
	return h.branch, h.err
}

// repoState describes what the fake repository reports.
type repoState struct {
	current  string
	def      string
	local    []string
	remote   []string
	tracking []string
	remotes  []string
}

// fakeRepo stubs every query Snapshot and Retrieve issue.
func fakeRepo(s repoState) *gittest.Runner {
	r := gittest.New()

	var local []string
	for _, b := range s.local {
		if b == s.current {
			local = append(local, "* "+b)
		} else {
			local = append(local, b)
		}
	}
	r.Stub("branch", local...)

	show := []string{"* remote origin", "HEAD branch: " + s.def, "Remote branches:"}
	for _, b := range s.remote {
		show = append(show, b+" tracked")
	}
	r.Stub("remote show origin", show...)

	var vv []string
	for _, b := range s.local {
		line := b + " 1a2b3c4 "
		for _, t := range s.tracking {
			if t == b {
				line += "[origin/" + b + "] "
			}
		}
		vv = append(vv, line+"msg")
	}
	r.Stub("branch -vv", vv...)

	r.Stub("symbolic-ref --short refs/remotes/origin/HEAD", "origin/"+s.def)
	r.Stub("rev-parse --abbrev-ref HEAD", s.current)

	remotes := s.remotes
	if remotes == nil {
		remotes = []string{"origin"}
	}
	r.Stub("remote", remotes...)
	return r
}

// mutations filters out queries, leaving the commands that change state.
func mutations(calls []string) []string {
	queries := map[string]bool{
		"branch":             true,
		"branch -vv":         true,
		"remote":             true,
		"remote show origin": true,
		"symbolic-ref --short refs/remotes/origin/HEAD": true,
		"rev-parse --abbrev-ref HEAD":                   true,
	}
	var out []string
	for _, c := range calls {
		if !queries[c] {
			out = append(out, c)
		}
	}
	return out
}
