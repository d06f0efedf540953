package stack

import (
	"github.com/stretchr/testify/mock"

	"github.com/calebh/stackbuddy/internal/git"
)

// MockGitClient is a testify mock of the git operations consumed by the
// resolver, for tests that need history shapes a real repository can't
// easily produce (cycles, self-parents, query failures).
type MockGitClient struct {
	mock.Mock
}

// CurrentBranch implements GitClient.
func (m *MockGitClient) CurrentBranch() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// TrunkBranch implements GitClient.
func (m *MockGitClient) TrunkBranch() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// DecoratedLog implements GitClient.
func (m *MockGitClient) DecoratedLog(branch string, limit int) ([]git.DecoratedCommit, error) {
	args := m.Called(branch, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]git.DecoratedCommit), args.Error(1)
}
