package gh

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// PR contains pull request information returned from the gh CLI
type PR struct {
	Number  int    `json:"number"`
	URL     string `json:"url"`
	State   string `json:"state"`
	Title   string `json:"title"`
	IsDraft bool   `json:"isDraft"`
}

// Client provides GitHub operations via the gh CLI. Commands run with the
// repository root as their working directory so gh resolves the right repo.
type Client struct {
	dir string
}

// NewClient creates a GitHub client operating on the repository at dir
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// PRForBranch finds the pull request whose head is the given branch.
// Returns (nil, nil) when the branch has no pull request, which is a normal
// state for a branch that hasn't been pushed yet.
func (c *Client) PRForBranch(branch string) (*PR, error) {
	output, err := c.execGH("pr", "view", branch, "--json", "number,url,state,title,isDraft")
	if err != nil {
		if isNoPRError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up PR for branch %s: %w", branch, err)
	}

	var pr PR
	if err := json.Unmarshal(output, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse PR data for branch %s: %w", branch, err)
	}
	return &pr, nil
}

// PRBody returns the description body of the pull request for the given branch
func (c *Client) PRBody(branch string) (string, error) {
	output, err := c.execGH("pr", "view", branch, "--json", "body")
	if err != nil {
		return "", fmt.Errorf("failed to fetch PR body for branch %s: %w", branch, err)
	}

	var pr struct {
		Body string `json:"body"`
	}
	if err := json.Unmarshal(output, &pr); err != nil {
		return "", fmt.Errorf("failed to parse PR body for branch %s: %w", branch, err)
	}
	return pr.Body, nil
}

// UpdatePRBody replaces the description body of the pull request for the
// given branch. The body is streamed over stdin rather than passed as an
// argument, so it is not subject to argument length or escaping limits.
func (c *Client) UpdatePRBody(branch string, body string) error {
	cmd := exec.Command("gh", "pr", "edit", branch, "--body-file", "-")
	cmd.Dir = c.dir
	cmd.Stdin = strings.NewReader(body)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to update PR body for branch %s: %s", branch, strings.TrimSpace(string(output)))
	}
	return nil
}

// execGH executes a gh CLI command and returns its stdout
func (c *Client) execGH(args ...string) ([]byte, error) {
	cmd := exec.Command("gh", args...)
	cmd.Dir = c.dir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("gh CLI error: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("failed to execute gh: %w", err)
	}
	return output, nil
}

// isNoPRError checks if an error indicates that no PR exists for the branch
func isNoPRError(err error) bool {
	return strings.Contains(err.Error(), "no pull requests found")
}
