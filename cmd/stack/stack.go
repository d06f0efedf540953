package stack

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebh/stackbuddy/internal/gh"
	"github.com/calebh/stackbuddy/internal/git"
	"github.com/calebh/stackbuddy/internal/stack"
	"github.com/calebh/stackbuddy/internal/ui"
)

// Command prints the stack that ends in the given branch
type Command struct {
	// Arguments
	Branch string

	// Flags
	PRs   bool
	Tree  bool
	Table bool

	// Clients (can be mocked in tests)
	Git   *git.Client
	Stack *stack.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stack [branch]",
		Short: "Print the stack that ends in the given branch",
		Long: `Print the ordered chain of branches from the given branch down to the
trunk, current branch first. The trunk itself is not part of the stack.

If no branch is given, the current branch is used.

Example:
  stackbuddy stack
  stackbuddy stack --prs
  stackbuddy stack feature-b --tree`,
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

	cmd.Flags().BoolVarP(&c.PRs, "prs", "p", false, "print PR numbers instead of branch names")
	cmd.Flags().BoolVar(&c.Tree, "tree", false, "render the stack as a tree rooted at the trunk")
	cmd.Flags().BoolVar(&c.Table, "table", false, "render the stack as a table with PR status")

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
	current, err := c.Git.CurrentBranch()
	if err != nil {
		return err
	}

	branch := c.Branch
	if branch == "" {
		branch = current
	}

	branches, err := c.Stack.StackFrom(branch)
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		ui.Infof("%s is the trunk branch, nothing is stacked on it", branch)
		return nil
	}

	switch {
	case c.Tree, c.Table:
		entries, err := c.Stack.DisplayEntries(branches, current)
		if err != nil {
			return err
		}
		if c.Tree {
			trunk, err := c.Git.TrunkBranch()
			if err != nil {
				return err
			}
			ui.Println(ui.RenderStackTree(trunk, entries))
		} else {
			ui.Println(ui.RenderStackTable(entries))
		}

	case c.PRs:
		for _, b := range branches {
			pr, err := c.Stack.PRFor(b)
			if err != nil {
				return err
			}
			if pr != nil {
				ui.Println(fmt.Sprintf("- #%d", pr.Number))
			}
		}

	default:
		for _, b := range branches {
			ui.Println(b)
		}
	}

	return nil
}
