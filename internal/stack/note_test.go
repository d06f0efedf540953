package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebh/stackbuddy/internal/gh"
)

// newStackedClient wires mocks for the stack [feature-c, feature-b, feature-a]
// on trunk main, with PRs #41 on feature-b and #40 on feature-a. feature-c has
// no PR yet.
func newStackedClient(t *testing.T) (*Client, *gh.MockGithubClient) {
	t.Helper()

	mockGit := &MockGitClient{}
	mockGit.On("CurrentBranch").Return("feature-c", nil)
	mockGit.On("TrunkBranch").Return("main", nil)
	mockGit.On("DecoratedLog", "feature-c", DefaultLogWindow).Return(decorated([]string{"feature-b"}), nil)
	mockGit.On("DecoratedLog", "feature-b", DefaultLogWindow).Return(decorated([]string{"feature-a"}), nil)
	mockGit.On("DecoratedLog", "feature-a", DefaultLogWindow).Return(decorated([]string{"main"}), nil)

	mockGithub := &gh.MockGithubClient{}
	mockGithub.On("PRForBranch", "feature-c").Return(nil, nil)
	mockGithub.On("PRForBranch", "feature-b").Return(&gh.PR{Number: 41, State: "OPEN"}, nil)
	mockGithub.On("PRForBranch", "feature-a").Return(&gh.PR{Number: 40, State: "OPEN"}, nil)

	return NewClient(mockGit, mockGithub), mockGithub
}

func TestNoteBlockDouble(t *testing.T) {
	t.Run("head of the stack has only a previous PR", func(t *testing.T) {
		client, _ := newStackedClient(t)

		note, err := client.NoteBlock("feature-c", FormatDouble)
		require.NoError(t, err)
		assert.Equal(t, "> [!Note]\n> - Previous PR: #41", note)
	})

	t.Run("middle of the stack has both neighbors", func(t *testing.T) {
		client, _ := newStackedClient(t)

		note, err := client.NoteBlock("feature-b", FormatDouble)
		require.NoError(t, err)

		// feature-b sits on feature-a (#40); feature-c on top has no PR yet
		assert.Equal(t, "> [!Note]\n> - Previous PR: #40", note)
	})

	t.Run("no neighbor PRs falls back to a sentence", func(t *testing.T) {
		mockGit := &MockGitClient{}
		mockGit.On("CurrentBranch").Return("only", nil)
		mockGit.On("TrunkBranch").Return("main", nil)
		mockGit.On("DecoratedLog", "only", DefaultLogWindow).Return(decorated([]string{"main"}), nil)

		client := NewClient(mockGit, &gh.MockGithubClient{})

		note, err := client.NoteBlock("only", FormatDouble)
		require.NoError(t, err)
		assert.Equal(t, "> [!Note]\n> This is currently the only PR in the stack", note)
	})
}

func TestNoteBlockList(t *testing.T) {
	client, _ := newStackedClient(t)

	note, err := client.NoteBlock("feature-b", FormatList)
	require.NoError(t, err)

	// Base to head, focal entry marked, feature-c omitted (no PR)
	assert.Equal(t, "> [!Note]\n> PRs in the stack:\n> - #40\n> - #41 (this)", note)
}

func TestNoteBlockTable(t *testing.T) {
	t.Run("one neighbor missing renders as None", func(t *testing.T) {
		client, _ := newStackedClient(t)

		note, err := client.NoteBlock("feature-b", FormatTable)
		require.NoError(t, err)
		assert.Equal(t, "| Previous PR | Next PR |\n|-------------|---------|\n| #40 | None |", note)
	})

	t.Run("both neighbors missing renders None twice", func(t *testing.T) {
		mockGit := &MockGitClient{}
		mockGit.On("CurrentBranch").Return("only", nil)
		mockGit.On("TrunkBranch").Return("main", nil)
		mockGit.On("DecoratedLog", "only", DefaultLogWindow).Return(decorated([]string{"main"}), nil)

		client := NewClient(mockGit, &gh.MockGithubClient{})

		note, err := client.NoteBlock("only", FormatTable)
		require.NoError(t, err)
		assert.Equal(t, "| Previous PR | Next PR |\n|-------------|---------|\n| None | None |", note)
	})
}

func TestNoteBlockBranchNotInStack(t *testing.T) {
	client, _ := newStackedClient(t)

	_, err := client.NoteBlock("unrelated", FormatDouble)
	assert.ErrorIs(t, err, ErrBranchNotInStack)
}

func TestParseNoteFormat(t *testing.T) {
	for _, valid := range []string{"double", "list", "table"} {
		format, err := ParseNoteFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, NoteFormat(valid), format)
	}

	_, err := ParseNoteFormat("fancy")
	assert.Error(t, err)
}
