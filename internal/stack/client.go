package stack

import (
	"errors"

	"github.com/calebh/stackbuddy/internal/gh"
)

// ErrBranchNotInStack is returned when a note is requested for a branch that
// is not part of the resolved stack.
var ErrBranchNotInStack = errors.New("branch is not in the stack")

// GithubClient defines the GitHub operations needed by the stack package
type GithubClient interface {
	PRForBranch(branch string) (*gh.PR, error)
	PRBody(branch string) (string, error)
	UpdatePRBody(branch string, body string) error
}

// Client ties the topology resolver to the review host: it resolves stacks,
// composes adjacency notes for their PRs, and syncs those notes into PR
// descriptions.
type Client struct {
	*Resolver
	gh GithubClient
}

// NewClient creates a stack client over the given git and GitHub clients
func NewClient(gitClient GitClient, ghClient GithubClient) *Client {
	return &Client{
		Resolver: NewResolver(gitClient),
		gh:       ghClient,
	}
}

// PRFor returns the PR associated with a branch, or nil when there is none
func (c *Client) PRFor(branch string) (*gh.PR, error) {
	return c.gh.PRForBranch(branch)
}
