package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/gtl/internal/config"
	"github.com/penwyp/gtl/internal/errors"
	"github.com/penwyp/gtl/internal/git"
	"github.com/penwyp/gtl/internal/logger"
	"github.com/penwyp/gtl/internal/message"
	"github.com/penwyp/gtl/internal/publish"
	"github.com/penwyp/gtl/internal/runner"
	"github.com/penwyp/gtl/internal/settings"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const programName = "gtl"

// version holds the current version of gtl.
// This can be overridden at build time via ldflags.
var version = "0.1.6"

// 将外部依赖抽象为可替换的 provider，测试时注入 fake。
var (
	invokerProvider func(log *zap.Logger) runner.Invoker      = defaultInvokerProvider
	configProvider  func(path string) (config.Manager, error) = config.NewConfigManager
	workingDir      func() (string, error)                    = git.WorkingDir
	clock           func() time.Time                          = time.Now
	sleeper         publish.SleepFunc                         = publish.Sleep
	getenv          func(string) string                       = os.Getenv
	newLogger       func(debug bool) (*zap.Logger, error)     = logger.New
)

func defaultInvokerProvider(log *zap.Logger) runner.Invoker {
	return runner.NewExecInvoker(log)
}

// app carries everything a command needs for one dispatch.
type app struct {
	settings *settings.Settings
	logger   *zap.Logger
	config   config.Config

	client    git.Client
	remotes   *git.Controller
	publisher *publish.Publisher

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// Execute runs gtl with the process arguments.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs gtl with the process arguments under ctx.
func ExecuteContext(ctx context.Context) error {
	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	if len(args) == 0 {
		return errors.ErrUsage
	}

	s := settings.FromEnv(settings.Default(programName, version), getenv)

	log, err := newLogger(s.Debug)
	if err != nil {
		return errors.Wrap(errors.ErrTypeUnknown, "failed to initialize logger", err)
	}
	defer func() { _ = log.Sync() }()

	err = dispatch(ctx, s, log, args, in, out, errOut)
	var exitErr *errors.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		log.Debug("Command failed",
			zap.String("command", args[0]),
			zap.Stringer("error_type", errors.GetType(err)),
			zap.Error(err))
	}
	return err
}

// dispatch loads the config, builds the app and runs exactly one verb or
// pass-through.
func dispatch(ctx context.Context, s *settings.Settings, log *zap.Logger, args []string, in io.Reader, out, errOut io.Writer) error {
	manager, err := configProvider(s.ConfigPath)
	if err != nil {
		return err
	}
	cfg, err := manager.Load()
	if err != nil {
		return err
	}
	log.Debug("Loaded config", zap.String("path", manager.Path()), zap.Int("directories", len(cfg)))

	invoker := invokerProvider(log)
	client := git.NewClient(invoker, s.VCSBinary)
	a := &app{
		settings:  s,
		logger:    log,
		config:    cfg,
		client:    client,
		remotes:   git.NewController(client, log, out),
		publisher: publish.New(invoker, s, log, sleeper, out),
		in:        in,
		out:       out,
		errOut:    errOut,
	}

	if isVersionFlag(args[0]) {
		args = []string{"version"}
	}

	root, verbs := newRootCommand(a)
	if !isVerb(verbs, args[0]) {
		return a.passThrough(ctx, args)
	}

	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

// newRootCommand builds the command tree and returns it with the verbs gtl
// handles itself; anything else is forwarded to git.
func newRootCommand(a *app) (*cobra.Command, []*cobra.Command) {
	root := &cobra.Command{
		Use:   programName + " <command> [args...]",
		Short: "git with multi-remote init and push",
		Long: `gtl wraps git and adds one-shot commands that act on every remote
configured for the current directory in ` + a.settings.ConfigPath + `.

Any command gtl does not know is passed to git unchanged.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	help := newHelpCommand(a)
	verbs := []*cobra.Command{
		newInitCommand(a),
		newPushCommand(a),
		newAcpCommand(a),
		newPacpCommand(a),
		newVersionCommand(a),
	}
	root.AddCommand(verbs...)
	root.SetHelpCommand(help)

	return root, append(verbs, help)
}

func isVersionFlag(arg string) bool {
	return arg == "-v" || arg == "--version"
}

func isVerb(verbs []*cobra.Command, arg string) bool {
	for _, c := range verbs {
		if c.Name() == arg {
			return true
		}
	}
	return false
}

// workDir resolves the directory remotes are looked up by.
func (a *app) workDir() (string, error) {
	return workingDir()
}

// autoMessage builds the commit message used when none was typed.
func (a *app) autoMessage(dir string) string {
	manifest := a.settings.ManifestFile
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(dir, manifest)
	}
	return message.Auto(manifest, clock)
}

// passThrough forwards args to git and adopts its exit code.
func (a *app) passThrough(ctx context.Context, args []string) error {
	code, err := a.client.Raw(ctx, args...)
	if err != nil {
		return err
	}
	// 被信号终止的子进程没有退出码，按 0 处理
	if code <= 0 {
		return nil
	}
	return &errors.ExitError{Code: code}
}
