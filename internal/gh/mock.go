package gh

import (
	"github.com/stretchr/testify/mock"
)

// MockGithubClient is a testify mock of the GitHub operations consumed by the
// stack package, shared by tests across packages.
type MockGithubClient struct {
	mock.Mock
}

// PRForBranch implements stack.GithubClient.
func (m *MockGithubClient) PRForBranch(branch string) (*PR, error) {
	args := m.Called(branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PR), args.Error(1)
}

// PRBody implements stack.GithubClient.
func (m *MockGithubClient) PRBody(branch string) (string, error) {
	args := m.Called(branch)
	return args.String(0), args.Error(1)
}

// UpdatePRBody implements stack.GithubClient.
func (m *MockGithubClient) UpdatePRBody(branch string, body string) error {
	args := m.Called(branch, body)
	return args.Error(0)
}
