package git

import (
	"context"
	"testing"

	"github.com/penwyp/gtl/internal/config"
	"github.com/penwyp/gtl/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoker 用于模拟外部命令执行
type MockInvoker struct {
	mock.Mock
}

func (m *MockInvoker) Run(ctx context.Context, name string, args ...string) (int, error) {
	arguments := m.Called(ctx, name, args)
	return arguments.Int(0), arguments.Error(1)
}

func TestClient_Commands(t *testing.T) {
	remote := config.Remote{Name: "origin", URL: "git@github.com:owner/repo.git"}

	tests := []struct {
		name     string
		call     func(ctx context.Context, c Client) (int, error)
		expected []string
	}{
		{
			name:     "Init",
			call:     func(ctx context.Context, c Client) (int, error) { return c.Init(ctx) },
			expected: []string{"init"},
		},
		{
			name: "AddSafeDirectory",
			call: func(ctx context.Context, c Client) (int, error) {
				return c.AddSafeDirectory(ctx, "/home/user/project")
			},
			expected: []string{"config", "--global", "--add", "safe.directory", "/home/user/project"},
		},
		{
			name:     "DisableIgnoredFileAdvice",
			call:     func(ctx context.Context, c Client) (int, error) { return c.DisableIgnoredFileAdvice(ctx) },
			expected: []string{"config", "--global", "advice.addIgnoredFile", "false"},
		},
		{
			name:     "RemoteAdd",
			call:     func(ctx context.Context, c Client) (int, error) { return c.RemoteAdd(ctx, remote) },
			expected: []string{"remote", "add", "origin", "git@github.com:owner/repo.git"},
		},
		{
			name:     "AddAll",
			call:     func(ctx context.Context, c Client) (int, error) { return c.AddAll(ctx) },
			expected: []string{"add", "*"},
		},
		{
			name:     "Commit",
			call:     func(ctx context.Context, c Client) (int, error) { return c.Commit(ctx, "feat: v1.2.3") },
			expected: []string{"commit", "-m", "feat: v1.2.3"},
		},
		{
			name:     "Push",
			call:     func(ctx context.Context, c Client) (int, error) { return c.Push(ctx, "gitee") },
			expected: []string{"push", "gitee"},
		},
		{
			name:     "Help without topic",
			call:     func(ctx context.Context, c Client) (int, error) { return c.Help(ctx) },
			expected: []string{"help"},
		},
		{
			name:     "Help with topic",
			call:     func(ctx context.Context, c Client) (int, error) { return c.Help(ctx, "commit") },
			expected: []string{"help", "commit"},
		},
		{
			name:     "Raw",
			call:     func(ctx context.Context, c Client) (int, error) { return c.Raw(ctx, "status", "-s") },
			expected: []string{"status", "-s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := new(MockInvoker)
			inv.On("Run", mock.Anything, "git", tt.expected).Return(0, nil)

			code, err := tt.call(context.Background(), NewClient(inv, ""))

			require.NoError(t, err)
			assert.Equal(t, 0, code)
			inv.AssertExpectations(t)
		})
	}
}

func TestClient_NonZeroExitIsReturned(t *testing.T) {
	inv := new(MockInvoker)
	inv.On("Run", mock.Anything, "git", []string{"status"}).Return(128, nil)

	code, err := NewClient(inv, "git").Raw(context.Background(), "status")

	require.NoError(t, err)
	assert.Equal(t, 128, code)
}

func TestClient_SpawnFailureNamesAction(t *testing.T) {
	inv := new(MockInvoker)
	inv.On("Run", mock.Anything, "git", []string{"push", "origin"}).Return(-1, assert.AnError)

	_, err := NewClient(inv, "git").Push(context.Background(), "origin")

	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeExec, errors.GetType(err))
	assert.Contains(t, err.Error(), "failed to push to remote origin")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, errors.GetSuggestion(err), "git is installed")
}

func TestClient_CustomBinary(t *testing.T) {
	inv := new(MockInvoker)
	inv.On("Run", mock.Anything, "/usr/local/bin/git", []string{"init"}).Return(0, nil)

	_, err := NewClient(inv, "/usr/local/bin/git").Init(context.Background())

	require.NoError(t, err)
	inv.AssertExpectations(t)
}
