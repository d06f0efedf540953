package updatenotes

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/calebh/stackbuddy/internal/gh"
	"github.com/calebh/stackbuddy/internal/git"
	"github.com/calebh/stackbuddy/internal/stack"
	"github.com/calebh/stackbuddy/internal/ui"
)

// Command syncs adjacency notes into every PR description in the stack
type Command struct {
	// Arguments
	Branch string

	// Flags
	Format string
	DryRun bool

	// Clients (can be mocked in tests)
	Git   *git.Client
	Stack *stack.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "update-notes [branch]",
		Short: "Stamp stack notes into every PR description in the stack",
		Long: `Walk the stack that ends in the given branch and merge an adjacency note
into each branch's PR description. The note lives between fixed markers, so
re-running replaces the previous note and leaves the rest of the description
untouched.

A failure on one branch is reported and the remaining branches are still
attempted.

If no branch is given, the current branch is used.

Example:
  stackbuddy update-notes
  stackbuddy update-notes --format list --dry-run`,
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

	cmd.Flags().StringVarP(&c.Format, "format", "f", string(stack.FormatDouble), "note format: double, list, or table")
	cmd.Flags().BoolVar(&c.DryRun, "dry-run", false, "print the notes that would be written without updating any PR")

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
	format, err := stack.ParseNoteFormat(c.Format)
	if err != nil {
		return err
	}

	branch := c.Branch
	if branch == "" {
		current, err := c.Git.CurrentBranch()
		if err != nil {
			return err
		}
		branch = current
	}

	branches, err := c.Stack.StackFrom(branch)
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		ui.Infof("%s is the trunk branch, no PRs to update", branch)
		return nil
	}

	return c.Stack.SyncNotes(branches, format, c.DryRun)
}
