package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kingfisher-tools/hooks/internal/command"
	"github.com/kingfisher-tools/hooks/internal/hook"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts hook.Options
	var uninstall bool

	rootCmd := &cobra.Command{
		Use:   "kingfisher-hooks",
		Short: "Install a git pre-commit hook that runs the Kingfisher secret scanner",
		Long: `Installs a pre-commit hook that scans staged changes with the containerized
Kingfisher secret scanner before each commit. A pre-existing hook is preserved
and keeps running before the scanner. Use --uninstall to remove the hook and
restore the prior state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			installer := newInstaller(cmd)
			if uninstall {
				return installer.Uninstall(cmd.Context(), opts)
			}
			return installer.Install(cmd.Context(), opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.Global, "global", false, "target the global hooks directory instead of the repo's")
	rootCmd.Flags().StringVar(&opts.HooksPath, "hooks-path", "", "explicit hooks directory override (ignored with --global)")
	rootCmd.Flags().BoolVar(&uninstall, "uninstall", false, "remove the installed hook and restore any preserved prior hook")

	rootCmd.AddCommand(newStatusCmd())

	return rootCmd
}

func newInstaller(cmd *cobra.Command) *hook.Installer {
	runner := command.NewRunner()
	return hook.NewInstaller(runner, command.NewGitRunner(runner), cmd.OutOrStdout(), cmd.ErrOrStderr())
}
