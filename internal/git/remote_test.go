package git

import (
	"bytes"
	"context"
	"testing"

	"github.com/penwyp/gtl/internal/config"
	"github.com/penwyp/gtl/internal/errors"
	"github.com/penwyp/gtl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = config.Config{
	"/home/user/project": {
		{Name: "origin", URL: "git@github.com:user/project.git"},
		{Name: "gitee", URL: "git@gitee.com:user/project.git"},
		{Name: "backup", URL: "https://git.example.com/user/project.git"},
	},
}

func TestController_ForEachRemote_UnknownDirIsNoop(t *testing.T) {
	inv := &testutil.Invoker{}
	c := NewController(NewClient(inv, "git"), nil, nil)

	err := c.PushAll(context.Background(), testConfig, "/somewhere/else")

	require.NoError(t, err)
	assert.Empty(t, inv.Calls())
}

func TestController_ForEachRemote_EmptyConfig(t *testing.T) {
	inv := &testutil.Invoker{}
	c := NewController(NewClient(inv, "git"), nil, nil)

	require.NoError(t, c.AddRemotes(context.Background(), config.Config{}, "/home/user/project"))
	require.NoError(t, c.PushAll(context.Background(), nil, "/home/user/project"))
	assert.Empty(t, inv.Calls())
}

func TestController_PushAll_InOrder(t *testing.T) {
	inv := &testutil.Invoker{}
	c := NewController(NewClient(inv, "git"), nil, nil)

	require.NoError(t, c.PushAll(context.Background(), testConfig, "/home/user/project"))

	assert.Equal(t, []string{
		"git push origin",
		"git push gitee",
		"git push backup",
	}, inv.Lines())
}

func TestController_AddRemotes_InOrder(t *testing.T) {
	inv := &testutil.Invoker{}
	c := NewController(NewClient(inv, "git"), nil, nil)

	require.NoError(t, c.AddRemotes(context.Background(), testConfig, "/home/user/project"))

	assert.Equal(t, []string{
		"git remote add origin git@github.com:user/project.git",
		"git remote add gitee git@gitee.com:user/project.git",
		"git remote add backup https://git.example.com/user/project.git",
	}, inv.Lines())
}

func TestController_NonZeroExitContinues(t *testing.T) {
	inv := &testutil.Invoker{Respond: func(call testutil.Call) (int, error) {
		if call.Args[1] == "origin" {
			return 1, nil
		}
		return 0, nil
	}}
	c := NewController(NewClient(inv, "git"), nil, nil)

	err := c.PushAll(context.Background(), testConfig, "/home/user/project")

	require.NoError(t, err)
	assert.Len(t, inv.Calls(), 3)
}

func TestController_SpawnErrorAborts(t *testing.T) {
	inv := &testutil.Invoker{Respond: func(call testutil.Call) (int, error) {
		if call.Args[1] == "gitee" {
			return -1, assert.AnError
		}
		return 0, nil
	}}
	c := NewController(NewClient(inv, "git"), nil, nil)

	err := c.PushAll(context.Background(), testConfig, "/home/user/project")

	require.Error(t, err)
	assert.Equal(t, errors.ErrTypeExec, errors.GetType(err))
	assert.Contains(t, err.Error(), "failed to push to remote gitee")
	assert.Equal(t, []string{"git push origin", "git push gitee"}, inv.Lines())
}

func TestController_ForEachRemote_CustomOp(t *testing.T) {
	c := NewController(NewClient(&testutil.Invoker{}, "git"), nil, nil)
	var seen []string

	err := c.ForEachRemote(context.Background(), testConfig, "/home/user/project",
		func(_ context.Context, r config.Remote) (int, error) {
			seen = append(seen, r.Name)
			return 0, nil
		})

	require.NoError(t, err)
	assert.Equal(t, []string{"origin", "gitee", "backup"}, seen)
}

func TestController_PushAll_ReportsProgress(t *testing.T) {
	var out bytes.Buffer
	c := NewController(NewClient(&testutil.Invoker{}, "git"), nil, &out)

	require.NoError(t, c.PushAll(context.Background(), testConfig, "/home/user/project"))

	assert.Contains(t, out.String(), "Pushing to origin")
	assert.Contains(t, out.String(), "Pushing to gitee")
	assert.Contains(t, out.String(), "Pushing to backup")
}
