package workflow

import (
	"errors"

	"github.com/raphi011/gx/internal/git"
)

var (
	// ErrInvalidArgument indicates user-supplied operation arguments failed validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDetachedHead indicates HEAD is not on a branch.
	ErrDetachedHead = errors.New("HEAD is detached, check out a branch first")
)

// HeadReader reads the current branch without running git.
type HeadReader interface {
	CurrentBranch() (string, error)
}

// Engine runs gx operations against one repository.
type Engine struct {
	git  git.Runner
	inv  *git.Inventory
	head HeadReader
}

// New creates an Engine. remote is the primary remote; head may be nil for
// operations that don't validate against the current branch up front.
func New(r git.Runner, remote string, head HeadReader) *Engine {
	return &Engine{
		git:  r,
		inv:  git.NewInventory(r, remote),
		head: head,
	}
}

// Remote returns the primary remote name.
func (e *Engine) Remote() string {
	return e.inv.Remote()
}
