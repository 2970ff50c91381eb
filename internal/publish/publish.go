// Package publish runs the package publish tool with a fixed retry budget.
package publish

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/penwyp/gtl/internal/errors"
	gtllog "github.com/penwyp/gtl/internal/logger"
	"github.com/penwyp/gtl/internal/runner"
	"github.com/penwyp/gtl/internal/settings"
	"github.com/penwyp/gtl/ui"
	"go.uber.org/zap"
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the production SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Publisher invokes settings.PublishBinary until it exits cleanly or
// settings.MaxRetries attempts have been made. Attempts are spaced by a
// fixed settings.RetryDelay.
type Publisher struct {
	invoker  runner.Invoker
	settings *settings.Settings
	logger   *zap.Logger
	sleep    SleepFunc
	out      io.Writer
}

// New 创建 Publisher
func New(invoker runner.Invoker, s *settings.Settings, logger *zap.Logger, sleep SleepFunc, out io.Writer) *Publisher {
	if logger == nil {
		logger = gtllog.Nop()
	}
	if sleep == nil {
		sleep = Sleep
	}
	if out == nil {
		out = io.Discard
	}
	return &Publisher{
		invoker:  invoker,
		settings: s,
		logger:   logger,
		sleep:    sleep,
		out:      out,
	}
}

// Publish runs the retry loop. It returns nil on the first successful
// attempt and an ErrTypePublish error once every attempt has failed.
func (p *Publisher) Publish(ctx context.Context) error {
	maxRetries := p.settings.MaxRetries
	delay := p.settings.RetryDelay

	for attempt := 1; attempt <= maxRetries; attempt++ {
		code, err := p.invoker.Run(ctx, p.settings.PublishBinary, p.settings.PublishArgs...)
		if err == nil && code == 0 {
			_, _ = fmt.Fprintln(p.out, ui.RenderStatusBar("Successfully published package.", true))
			return nil
		}

		fields := []zap.Field{
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxRetries),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		} else {
			fields = append(fields, zap.Int("exit_code", code))
		}
		if attempt == maxRetries {
			p.logger.Warn(fmt.Sprintf("Publish attempt %d failed", attempt), fields...)
			break
		}

		fields = append(fields, zap.Duration("retry_in", delay))
		p.logger.Warn(fmt.Sprintf("Publish attempt %d failed, retrying", attempt), fields...)
		if err := p.sleep(ctx, delay); err != nil {
			return errors.Wrap(errors.ErrTypePublish, "publish interrupted", err)
		}
	}

	return errors.New(errors.ErrTypePublish,
		fmt.Sprintf("failed to publish package after %d attempts", maxRetries))
}
