package parent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebh/stackbuddy/internal/gh"
	"github.com/calebh/stackbuddy/internal/stack"
	"github.com/calebh/stackbuddy/internal/testutil"
)

func TestParent(t *testing.T) {
	gitClient := testutil.NewTestRepo(t, "main")
	testutil.CreateBranch(t, gitClient, "feature-a", "main")
	testutil.CreateBranch(t, gitClient, "feature-b", "feature-a")

	newCommand := func(branch string) *Command {
		return &Command{
			Branch: branch,
			Git:    gitClient,
			Stack:  stack.NewClient(gitClient, &gh.MockGithubClient{}),
		}
	}

	t.Run("explicit branch", func(t *testing.T) {
		err := newCommand("feature-b").Run(context.Background())
		require.NoError(t, err)
	})

	t.Run("defaults to the current branch", func(t *testing.T) {
		err := newCommand("").Run(context.Background())
		require.NoError(t, err)
	})

	t.Run("trunk has no parent but is not an error", func(t *testing.T) {
		err := newCommand("main").Run(context.Background())
		require.NoError(t, err)
	})
}
