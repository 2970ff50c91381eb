package git

import (
	"context"
	"fmt"
	"io"

	"github.com/penwyp/gtl/internal/config"
	gtllog "github.com/penwyp/gtl/internal/logger"
	"github.com/penwyp/gtl/ui"
	"go.uber.org/zap"
)

// Controller applies git operations to every remote configured for a
// directory, in configuration order.
type Controller struct {
	client Client
	logger *zap.Logger
	out    io.Writer
}

// NewController 创建远程仓库批量操作控制器，out 接收每个远程的进度提示
func NewController(client Client, logger *zap.Logger, out io.Writer) *Controller {
	if logger == nil {
		logger = gtllog.Nop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Controller{client: client, logger: logger, out: out}
}

// ForEachRemote runs op once per remote configured for dir. A directory with
// no entry is a no-op. A non-zero exit from one remote does not stop the
// loop; an error (git could not be started) aborts it immediately.
func (c *Controller) ForEachRemote(ctx context.Context, cfg config.Config, dir string, op RemoteOp) error {
	remotes := cfg.Remotes(dir)
	if len(remotes) == 0 {
		c.logger.Debug("No remotes configured", zap.String("dir", dir))
		return nil
	}

	for _, remote := range remotes {
		code, err := op(ctx, remote)
		if err != nil {
			return err
		}
		if code != 0 {
			c.logger.Debug("Remote operation exited non-zero",
				zap.String("remote", remote.Name),
				zap.Int("exit_code", code))
		}
	}
	return nil
}

// AddRemotes registers every configured remote with `git remote add`.
func (c *Controller) AddRemotes(ctx context.Context, cfg config.Config, dir string) error {
	return c.ForEachRemote(ctx, cfg, dir, func(ctx context.Context, remote config.Remote) (int, error) {
		c.status("Adding remote %s", remote.Name)
		return c.client.RemoteAdd(ctx, remote)
	})
}

// PushAll pushes to every configured remote.
func (c *Controller) PushAll(ctx context.Context, cfg config.Config, dir string) error {
	return c.ForEachRemote(ctx, cfg, dir, func(ctx context.Context, remote config.Remote) (int, error) {
		c.status("Pushing to %s", remote.Name)
		return c.client.Push(ctx, remote.Name)
	})
}

func (c *Controller) status(format string, args ...interface{}) {
	fmt.Fprintln(c.out, ui.RenderStatusBar(fmt.Sprintf(format, args...), false))
}
