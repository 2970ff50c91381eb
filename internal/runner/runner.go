// Package runner starts external binaries (git, the package publisher) with
// the caller's standard streams attached.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	gtllog "github.com/penwyp/gtl/internal/logger"
	"go.uber.org/zap"
)

// Invoker runs a binary to completion. A non-zero exit is reported through
// the exit code; err is non-nil only when the process could not be started.
type Invoker interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// ExecInvoker is the os/exec backed Invoker used in production.
type ExecInvoker struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// NewExecInvoker returns an invoker wired to the process' own stdio.
func NewExecInvoker(logger *zap.Logger) *ExecInvoker {
	if logger == nil {
		logger = gtllog.Nop()
	}
	return &ExecInvoker{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run implements Invoker.
func (r *ExecInvoker) Run(ctx context.Context, name string, args ...string) (int, error) {
	r.Logger.Debug("Running command", zap.String("command", CommandLine(name, args...)))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		r.Logger.Debug("Command finished", zap.String("command", name), zap.Int("exit_code", 0))
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		r.Logger.Debug("Command finished", zap.String("command", name), zap.Int("exit_code", code))
		return code, nil
	}

	r.Logger.Debug("Command could not be started", zap.String("command", name), zap.Error(err))
	return -1, fmt.Errorf("unable to start %s: %w", name, err)
}

// CommandLine renders name and args the way a user would type them.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
