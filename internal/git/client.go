package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrDetachedHead is returned when HEAD does not point at a branch.
	ErrDetachedHead = errors.New("HEAD is detached")

	// ErrNoTrunk is returned when the repository has no branch named main or master.
	ErrNoTrunk = errors.New("no trunk branch found (expected a branch named main or master)")
)

// Client provides git operations for a repository. All commands run with the
// repository root as their working directory, so a client built for one
// repository never depends on the process working directory.
type Client struct {
	gitRoot string
}

// NewClient creates a git client for the repository containing the current directory
func NewClient() (*Client, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("not in a git repository: %w", err)
	}
	return &Client{gitRoot: strings.TrimSpace(string(output))}, nil
}

// NewClientAt creates a git client rooted at the given directory
func NewClientAt(dir string) (*Client, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s is not in a git repository: %w", dir, err)
	}
	return &Client{gitRoot: strings.TrimSpace(string(output))}, nil
}

// GitRoot returns the root directory of the git repository
func (c *Client) GitRoot() string {
	return c.gitRoot
}

// run executes a git command in the repository root and returns its stdout
func (c *Client) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.gitRoot
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(output), nil
}

// CurrentBranch returns the name of the checked-out branch. A detached HEAD
// has no branch name and is reported as ErrDetachedHead.
func (c *Client) CurrentBranch() (string, error) {
	output, err := c.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	branch := strings.TrimSpace(output)
	if branch == "HEAD" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

// ListBranches returns the names of all local branches
func (c *Client) ListBranches() ([]string, error) {
	output, err := c.run("for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// TrunkBranch returns the repository's trunk branch. A branch named main
// takes priority over one named master when both exist.
func (c *Client) TrunkBranch() (string, error) {
	branches, err := c.ListBranches()
	if err != nil {
		return "", err
	}

	found := ""
	for _, branch := range branches {
		if branch == "main" {
			return "main", nil
		}
		if branch == "master" {
			found = "master"
		}
	}
	if found == "" {
		return "", ErrNoTrunk
	}
	return found, nil
}

// CheckoutBranch checks out the specified branch
func (c *Client) CheckoutBranch(name string) error {
	if _, err := c.run("checkout", name); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}

// BranchExists checks if a local branch exists
func (c *Client) BranchExists(name string) bool {
	_, err := c.run("rev-parse", "--verify", "refs/heads/"+name)
	return err == nil
}

// HasUncommittedChanges checks if there are any uncommitted changes in the working directory
func (c *Client) HasUncommittedChanges() (bool, error) {
	output, err := c.run("status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check git status: %w", err)
	}
	return len(strings.TrimSpace(output)) > 0, nil
}
