package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebh/stackbuddy/internal/git"
)

// NewTestRepo creates a git client over a fresh repository in a temporary
// directory, with an initial commit on the given trunk branch.
func NewTestRepo(t *testing.T, trunk string) *git.Client {
	t.Helper()
	tempDir := t.TempDir()

	RunGit(t, tempDir, "init", "--initial-branch="+trunk)
	RunGit(t, tempDir, "config", "user.email", "test@example.com")
	RunGit(t, tempDir, "config", "user.name", "Test User")

	gitClient, err := git.NewClientAt(tempDir)
	require.NoError(t, err)

	Commit(t, gitClient, "initial")
	return gitClient
}

// Commit creates a commit touching a file named after the message
func Commit(t *testing.T, c *git.Client, message string) string {
	t.Helper()

	testFile := filepath.Join(c.GitRoot(), fmt.Sprintf("file-%s.txt", message))
	err := os.WriteFile(testFile, []byte(message+"\n"), 0644)
	require.NoError(t, err)

	RunGit(t, c.GitRoot(), "add", ".")
	RunGit(t, c.GitRoot(), "commit", "-m", message)
	return strings.TrimSpace(RunGit(t, c.GitRoot(), "rev-parse", "HEAD"))
}

// CreateBranch creates and checks out a branch at the given start point and
// adds one commit to it, so the branch tip carries its own decoration.
func CreateBranch(t *testing.T, c *git.Client, name string, from string) {
	t.Helper()
	RunGit(t, c.GitRoot(), "checkout", "-b", name, from)
	Commit(t, c, "commit-on-"+name)
}

// RunGit runs a git command in dir and fails the test on error
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_DATE=2024-01-01T00:00:00Z",
		"GIT_COMMITTER_DATE=2024-01-01T00:00:00Z",
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))
	return string(output)
}
