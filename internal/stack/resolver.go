package stack

import (
	"fmt"
	"strings"

	"github.com/calebh/stackbuddy/internal/git"
)

// DefaultLogWindow is how many decorated-history entries are inspected when
// looking for a branch's parent. A tunable bound, not a contract: a parent
// further back than this is treated as not discoverable.
const DefaultLogWindow = 32

// maxStackDepth bounds the walk so malformed history can never loop forever
const maxStackDepth = 100

// GitClient defines the git operations needed by the stack package
type GitClient interface {
	CurrentBranch() (string, error)
	TrunkBranch() (string, error)
	DecoratedLog(branch string, limit int) ([]git.DecoratedCommit, error)
}

// Resolver reconstructs stack topology from decorated git history. There is
// no persisted stack metadata: the parent relationship is inferred from which
// local branches decorate the commits behind a branch tip. The inference is a
// heuristic and can misfire when several branches share a tip commit or after
// a rebase onto an undecorated commit, so everything above this type treats
// it as an opaque oracle that could be swapped for a metadata-backed one.
type Resolver struct {
	git    GitClient
	window int
}

// NewResolver creates a resolver over the given git client
func NewResolver(gitClient GitClient) *Resolver {
	return &Resolver{
		git:    gitClient,
		window: DefaultLogWindow,
	}
}

// Parent returns the structural parent of the given branch: the first local
// branch decorating the branch's first-parent history behind its tip.
// ok is false when no parent is discoverable within the window, which by
// convention means the branch sits directly on the trunk.
func (r *Resolver) Parent(branch string) (parent string, ok bool, err error) {
	commits, err := r.git.DecoratedLog(branch, r.window)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve parent of %s: %w", branch, err)
	}

	for _, commit := range commits {
		if label, found := localBranchLabel(commit.Refs); found {
			return label, true, nil
		}
	}
	return "", false, nil
}

// localBranchLabel picks the first decoration label naming a local branch.
// Tags and remote-tracking refs don't identify a stack member and are
// skipped; a bare "HEAD" label (detached checkout) names no branch at all.
func localBranchLabel(refs []string) (string, bool) {
	for _, ref := range refs {
		ref = strings.TrimPrefix(ref, "HEAD -> ")
		if ref == "HEAD" || ref == "" {
			continue
		}
		if strings.HasPrefix(ref, "tag: ") {
			continue
		}
		if strings.HasPrefix(ref, "origin/") {
			continue
		}
		return ref, true
	}
	return "", false
}

// StackFrom walks parent links starting at the given branch and returns the
// stack head-first, excluding the trunk. The walk stops when the parent is
// the trunk, when no parent is discoverable, or when the history is malformed
// (a branch naming itself or a cycle). Walking from the trunk itself yields
// an empty stack.
func (r *Resolver) StackFrom(branch string) ([]string, error) {
	trunk, err := r.git.TrunkBranch()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve trunk branch: %w", err)
	}
	if branch == trunk {
		return nil, nil
	}

	stack := []string{branch}
	seen := map[string]bool{branch: true}

	current := branch
	for len(stack) < maxStackDepth {
		parent, ok, err := r.Parent(current)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve stack from %s: %w", branch, err)
		}
		if !ok || parent == trunk || parent == current || seen[parent] {
			break
		}
		stack = append(stack, parent)
		seen[parent] = true
		current = parent
	}
	return stack, nil
}

// CurrentStack returns the stack ending at the checked-out branch
func (r *Resolver) CurrentStack() ([]string, error) {
	branch, err := r.git.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("failed to get current branch: %w", err)
	}
	return r.StackFrom(branch)
}
