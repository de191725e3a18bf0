package cli

import (
	"github.com/spf13/cobra"

	"github.com/bitranox/lib-template/internal/banner"
	"github.com/bitranox/lib-template/internal/greeting"
	"github.com/bitranox/lib-template/internal/logging"
	"github.com/bitranox/lib-template/internal/meta"
)

// NewRootCommand builds the lib-template command tree.
//
// Errors are never printed by cobra; they are returned from Execute so the
// caller can turn them into an exit code.
func NewRootCommand(g *Globals, project meta.Project) *cobra.Command {
	root := &cobra.Command{
		Use:     project.ShellCommand,
		Short:   project.Title,
		Version: project.Version,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.LoadSettings()
			if err != nil {
				return err
			}
			if s.NoColor {
				logging.DisableColor()
			}
			logging.SetVerbose(s.Traceback)
			logging.Debugf("settings: traceback=%t broken_pipe_exit_code=%d message_limit=%d",
				s.Traceback, s.BrokenPipeExitCode, s.MessageLimit)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	BindFlags(root, g)
	SetCustomHelp(root)
	root.SetVersionTemplate(project.VersionLine() + "\n")
	root.SetFlagErrorFunc(flagError)
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newInfoCommand(project),
		newHelloCommand(),
		newFailCommand(),
	)
	return root
}

func newInfoCommand(project meta.Project) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print project information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return banner.PrintInfo(cmd.OutOrStdout(), project)
		},
	}
}

func newHelloCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Print the standard hello message",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return greeting.Hello(cmd.OutOrStdout())
		},
	}
}

func newFailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fail",
		Short: "Trigger the intentional failure",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return greeting.Fail()
		},
	}
}
