package parent

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/calebh/stackbuddy/internal/gh"
	"github.com/calebh/stackbuddy/internal/git"
	"github.com/calebh/stackbuddy/internal/stack"
	"github.com/calebh/stackbuddy/internal/ui"
)

// Command prints the parent of a branch
type Command struct {
	// Arguments
	Branch string

	// Clients (can be mocked in tests)
	Git   *git.Client
	Stack *stack.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "parent [branch]",
		Short: "Print the parent of the given branch",
		Long: `Print the branch the given branch is stacked on top of.

The parent is inferred from decorated git history, not stored anywhere.
If no branch is given, the current branch is used.

Example:
  stackbuddy parent
  stackbuddy parent feature-b`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				c.Branch = args[0]
			}
			if err := c.initClients(); err != nil {
				return err
			}
			return c.Run(cmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

// initClients builds the real clients unless tests injected their own
func (c *Command) initClients() error {
	if c.Git != nil {
		return nil
	}
	gitClient, err := git.NewClient()
	if err != nil {
		return err
	}
	c.Git = gitClient
	c.Stack = stack.NewClient(gitClient, gh.NewClient(gitClient.GitRoot()))
	return nil
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	branch := c.Branch
	if branch == "" {
		current, err := c.Git.CurrentBranch()
		if err != nil {
			return err
		}
		branch = current
	}

	parentBranch, ok, err := c.Stack.Parent(branch)
	if err != nil {
		return err
	}
	if !ok {
		ui.Infof("no parent found for %s within the decorated history window", branch)
		return nil
	}

	ui.Println(parentBranch)
	return nil
}
