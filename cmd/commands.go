package cmd

import (
	"fmt"

	"github.com/penwyp/gtl/internal/errors"
	"github.com/penwyp/gtl/internal/message"
	"github.com/penwyp/gtl/ui"
	"github.com/spf13/cobra"
)

func newInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "init",
		Short:              "git init, mark the directory safe and add every configured remote",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dir, err := a.workDir()
			if err != nil {
				return err
			}

			if _, err := a.client.Init(ctx); err != nil {
				return err
			}
			if _, err := a.client.AddSafeDirectory(ctx, dir); err != nil {
				return err
			}
			if _, err := a.client.DisableIgnoredFileAdvice(ctx); err != nil {
				return err
			}
			return a.remotes.AddRemotes(ctx, a.config, dir)
		},
	}
}

func newPushCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "push",
		Short:              "Push to every configured remote",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := a.workDir()
			if err != nil {
				return err
			}
			return a.remotes.PushAll(cmd.Context(), a.config, dir)
		},
	}
}

func newAcpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "acp",
		Short:              "Add everything, commit with a typed or automatic message, push to every remote",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := a.workDir()
			if err != nil {
				return err
			}

			line, err := ui.ReadLine(a.in, a.out)
			if err != nil {
				return errors.Wrap(errors.ErrTypeInput, "failed to read commit message", err)
			}
			msg := message.Resolve(line, func() string { return a.autoMessage(dir) })
			a.logger.Debug("Commit message resolved")

			return a.commitAndPush(cmd, dir, msg)
		},
	}
}

func newPacpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "pacp",
		Short:              "Publish the package, then add, commit and push to every remote",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := a.workDir()
			if err != nil {
				return err
			}

			if err := a.publisher.Publish(cmd.Context()); err != nil {
				return err
			}
			return a.commitAndPush(cmd, dir, a.autoMessage(dir))
		},
	}
}

// commitAndPush 依次执行 add、commit 与批量 push，git 的非零退出码不中断流程
func (a *app) commitAndPush(cmd *cobra.Command, dir, msg string) error {
	ctx := cmd.Context()
	if _, err := a.client.AddAll(ctx); err != nil {
		return err
	}
	if _, err := a.client.Commit(ctx, msg); err != nil {
		return err
	}
	return a.remotes.PushAll(ctx, a.config, dir)
}

func newHelpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "help [args...]",
		Short:              "Show gtl usage, then git help",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s extension usage: %s acp\n\n", a.settings.Name, a.settings.Name)
			_, err := a.client.Help(cmd.Context(), args...)
			return err
		},
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "version",
		Short:              "Print the gtl version",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", a.settings.Name, a.settings.Version)
			return nil
		},
	}
}
