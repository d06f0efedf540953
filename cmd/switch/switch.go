package switchcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebh/stackbuddy/internal/gh"
	"github.com/calebh/stackbuddy/internal/git"
	"github.com/calebh/stackbuddy/internal/stack"
	"github.com/calebh/stackbuddy/internal/ui"
)

// Command interactively switches to another branch in the current stack
type Command struct {
	// Clients (can be mocked in tests)
	Git   *git.Client
	Stack *stack.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Fuzzy-pick a branch in the current stack and check it out",
		Long: `Open a fuzzy finder over the branches of the current stack and check out
the selected one.

Example:
  stackbuddy switch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
	// Check for uncommitted changes before switching branches
	hasUncommitted, err := c.Git.HasUncommittedChanges()
	if err != nil {
		return fmt.Errorf("failed to check working directory: %w", err)
	}
	if hasUncommitted {
		return fmt.Errorf("uncommitted changes detected: commit or stash your changes before switching")
	}

	current, err := c.Git.CurrentBranch()
	if err != nil {
		return err
	}

	branches, err := c.Stack.StackFrom(current)
	if err != nil {
		return err
	}
	if len(branches) < 2 {
		ui.Info("no other branches in the current stack")
		return nil
	}

	entries, err := c.Stack.DisplayEntries(branches, current)
	if err != nil {
		return err
	}

	selected, err := ui.SelectBranch(entries)
	if err != nil {
		return err
	}
	if selected == "" || selected == current {
		return nil
	}

	if err := c.Git.CheckoutBranch(selected); err != nil {
		return err
	}
	ui.Successf("switched to %s", selected)
	return nil
}
