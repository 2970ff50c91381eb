package git

import (
	"context"
	"fmt"

	"github.com/penwyp/gtl/internal/config"
	"github.com/penwyp/gtl/internal/errors"
	"github.com/penwyp/gtl/internal/runner"
)

// client Client 的 runner 实现
type client struct {
	invoker runner.Invoker
	binary  string
}

// NewClient 创建新的 git 客户端；binary 为空时使用 "git"
func NewClient(invoker runner.Invoker, binary string) Client {
	if binary == "" {
		binary = "git"
	}
	return &client{
		invoker: invoker,
		binary:  binary,
	}
}

// run 执行 git 子命令，启动失败时以 action 描述错误
func (c *client) run(ctx context.Context, action string, args ...string) (int, error) {
	code, err := c.invoker.Run(ctx, c.binary, args...)
	if err != nil {
		return code, errors.Wrap(errors.ErrTypeExec, action, err).
			WithSuggestion(fmt.Sprintf("make sure %s is installed and on your PATH", c.binary))
	}
	return code, nil
}

func (c *client) Init(ctx context.Context) (int, error) {
	return c.run(ctx, "failed to execute git init", "init")
}

func (c *client) AddSafeDirectory(ctx context.Context, path string) (int, error) {
	return c.run(ctx, "failed to add safe.directory "+path,
		"config", "--global", "--add", "safe.directory", path)
}

func (c *client) DisableIgnoredFileAdvice(ctx context.Context) (int, error) {
	return c.run(ctx, "failed to disable advice.addIgnoredFile",
		"config", "--global", "advice.addIgnoredFile", "false")
}

func (c *client) RemoteAdd(ctx context.Context, remote config.Remote) (int, error) {
	return c.run(ctx, "failed to add remote "+remote.Name,
		"remote", "add", remote.Name, remote.URL)
}

// AddAll 使用 "*" pathspec 暂存全部改动（由 git 展开，不经过 shell）
func (c *client) AddAll(ctx context.Context) (int, error) {
	return c.run(ctx, "failed to add *", "add", "*")
}

func (c *client) Commit(ctx context.Context, message string) (int, error) {
	return c.run(ctx, "failed to commit -m "+message, "commit", "-m", message)
}

func (c *client) Push(ctx context.Context, remote string) (int, error) {
	return c.run(ctx, "failed to push to remote "+remote, "push", remote)
}

func (c *client) Help(ctx context.Context, args ...string) (int, error) {
	return c.run(ctx, "failed to run git help", append([]string{"help"}, args...)...)
}

func (c *client) Raw(ctx context.Context, args ...string) (int, error) {
	return c.run(ctx, "failed to execute git command", args...)
}
