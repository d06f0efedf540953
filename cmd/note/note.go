package note

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/calebh/stackbuddy/internal/gh"
	"github.com/calebh/stackbuddy/internal/git"
	"github.com/calebh/stackbuddy/internal/stack"
	"github.com/calebh/stackbuddy/internal/ui"
)

// Command generates a note block for the PR of the given branch
type Command struct {
	// Arguments
	Branch string

	// Flags
	Format string

	// Clients (can be mocked in tests)
	Git   *git.Client
	Stack *stack.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note [branch]",
		Short: "Generate a note block for the PR of the given branch",
		Long: `Generate a markdown note describing the given branch's neighbors in the
stack, suitable for pasting into its PR description.

Formats:
  double  previous and next PR, like a doubly linked list (default)
  list    every PR in the stack, base to head
  table   previous and next PR as a two-column table

If no branch is given, the current branch is used.

Example:
  stackbuddy note
  stackbuddy note --format table feature-b`,
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

	note, err := c.Stack.NoteBlock(branch, format)
	if err != nil {
		return err
	}

	ui.Println(note)
	return nil
}
