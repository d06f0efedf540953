package stack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/calebh/stackbuddy/internal/gh"
)

func TestSyncNotes(t *testing.T) {
	stack := []string{"feature-c", "feature-b", "feature-a"}

	t.Run("updates every branch with a PR and skips the rest", func(t *testing.T) {
		mockGithub := &gh.MockGithubClient{}
		mockGithub.On("PRForBranch", "feature-c").Return(nil, nil)
		mockGithub.On("PRForBranch", "feature-b").Return(&gh.PR{Number: 41}, nil)
		mockGithub.On("PRForBranch", "feature-a").Return(&gh.PR{Number: 40}, nil)
		mockGithub.On("PRBody", "feature-b").Return("b description", nil)
		mockGithub.On("PRBody", "feature-a").Return("a description", nil)

		wantB := MergeNote("b description", "> [!Note]\n> - Previous PR: #40")
		wantA := MergeNote("a description", "> [!Note]\n> - Next PR: #41")
		mockGithub.On("UpdatePRBody", "feature-b", wantB).Return(nil)
		mockGithub.On("UpdatePRBody", "feature-a", wantA).Return(nil)

		client := NewClient(&MockGitClient{}, mockGithub)

		err := client.SyncNotes(stack, FormatDouble, false)
		require.NoError(t, err)
		mockGithub.AssertExpectations(t)
	})

	t.Run("one branch failing does not stop the others", func(t *testing.T) {
		mockGithub := &gh.MockGithubClient{}
		mockGithub.On("PRForBranch", "feature-c").Return(nil, nil)
		mockGithub.On("PRForBranch", "feature-b").Return(&gh.PR{Number: 41}, nil)
		mockGithub.On("PRForBranch", "feature-a").Return(&gh.PR{Number: 40}, nil)
		mockGithub.On("PRBody", "feature-b").Return("", errors.New("api error"))
		mockGithub.On("PRBody", "feature-a").Return("a description", nil)
		mockGithub.On("UpdatePRBody", "feature-a", mock.Anything).Return(nil)

		client := NewClient(&MockGitClient{}, mockGithub)

		err := client.SyncNotes(stack, FormatDouble, false)
		assert.ErrorContains(t, err, "1 of 3")
		mockGithub.AssertCalled(t, "UpdatePRBody", "feature-a", MergeNote("a description", "> [!Note]\n> - Next PR: #41"))
	})

	t.Run("a body already carrying the note is left alone", func(t *testing.T) {
		mockGithub := &gh.MockGithubClient{}
		mockGithub.On("PRForBranch", "feature-c").Return(nil, nil)
		mockGithub.On("PRForBranch", "feature-b").Return(&gh.PR{Number: 41}, nil)
		mockGithub.On("PRForBranch", "feature-a").Return(&gh.PR{Number: 40}, nil)
		mockGithub.On("PRBody", "feature-b").Return(MergeNote("b description", "> [!Note]\n> - Previous PR: #40"), nil)
		mockGithub.On("PRBody", "feature-a").Return(MergeNote("a description", "> [!Note]\n> - Next PR: #41"), nil)

		client := NewClient(&MockGitClient{}, mockGithub)

		err := client.SyncNotes(stack, FormatDouble, false)
		require.NoError(t, err)
		mockGithub.AssertNotCalled(t, "UpdatePRBody", mock.Anything, mock.Anything)
	})

	t.Run("dry run never touches a PR", func(t *testing.T) {
		mockGithub := &gh.MockGithubClient{}
		mockGithub.On("PRForBranch", "feature-c").Return(nil, nil)
		mockGithub.On("PRForBranch", "feature-b").Return(&gh.PR{Number: 41}, nil)
		mockGithub.On("PRForBranch", "feature-a").Return(&gh.PR{Number: 40}, nil)

		client := NewClient(&MockGitClient{}, mockGithub)

		err := client.SyncNotes(stack, FormatDouble, true)
		require.NoError(t, err)
		mockGithub.AssertNotCalled(t, "PRBody", mock.Anything)
		mockGithub.AssertNotCalled(t, "UpdatePRBody", mock.Anything, mock.Anything)
	})
}
