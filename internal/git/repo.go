package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// ErrNotRepository indicates the path is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// Repo gives read access to repository metadata without spawning git.
type Repo struct {
	repo   *gogit.Repository
	gitDir string
	root   string
}

// OpenRepo opens the repository containing path, walking up to the first
// directory with a .git entry. Linked worktrees are supported.
func OpenRepo(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	r, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", abs, ErrNotRepository)
		}
		return nil, fmt.Errorf("open repository at %s: %w", abs, err)
	}

	st, ok := r.Storer.(*filesystem.Storage)
	if !ok {
		return nil, fmt.Errorf("open repository at %s: unsupported storage %T", abs, r.Storer)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", abs, ErrNotRepository)
	}

	return &Repo{
		repo:   r,
		gitDir: st.Filesystem().Root(),
		root:   wt.Filesystem.Root(),
	}, nil
}

// Root returns the top level directory of the work tree.
func (r *Repo) Root() string {
	return r.root
}

// GitDir returns the metadata directory of this work tree. For linked
// worktrees this is .git/worktrees/<name> of the main repository.
func (r *Repo) GitDir() string {
	return r.gitDir
}

// CommonDir returns the metadata directory shared by all worktrees.
func (r *Repo) CommonDir() string {
	data, err := os.ReadFile(filepath.Join(r.gitDir, "commondir"))
	if err != nil {
		return r.gitDir
	}
	dir := strings.TrimSpace(string(data))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(r.gitDir, dir)
	}
	return filepath.Clean(dir)
}

// CurrentBranch returns the branch HEAD points to, or "HEAD" when detached,
// matching `git rev-parse --abbrev-ref HEAD`. Works on unborn branches.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return "HEAD", nil
	}
	return head.Target().Short(), nil
}
