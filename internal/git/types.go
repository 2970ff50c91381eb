package git

import (
	"context"

	"github.com/penwyp/gtl/internal/config"
)

// Client wraps the git argument lists gtl needs. Every method returns git's
// exit code; the error is non-nil only when git could not be started.
type Client interface {
	// Init runs `git init` in the working directory.
	Init(ctx context.Context) (int, error)

	// AddSafeDirectory marks path as a safe.directory in the global config.
	AddSafeDirectory(ctx context.Context, path string) (int, error)

	// DisableIgnoredFileAdvice silences the advice git prints when `add`
	// skips ignored files.
	DisableIgnoredFileAdvice(ctx context.Context) (int, error)

	// RemoteAdd runs `git remote add <name> <url>`.
	RemoteAdd(ctx context.Context, remote config.Remote) (int, error)

	// AddAll stages every change.
	AddAll(ctx context.Context) (int, error)

	// Commit runs `git commit -m <message>`.
	Commit(ctx context.Context, message string) (int, error)

	// Push runs `git push <remote>`.
	Push(ctx context.Context, remote string) (int, error)

	// Help runs `git help [args...]`.
	Help(ctx context.Context, args ...string) (int, error)

	// Raw forwards args to git verbatim.
	Raw(ctx context.Context, args ...string) (int, error)
}

// RemoteOp is applied to each configured remote by the fan-out controller.
type RemoteOp func(ctx context.Context, remote config.Remote) (int, error)
