package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kingfisher-tools/hooks/internal/hook"
)

var (
	installedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	foreignStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	detailStyle    = lipgloss.NewStyle().Faint(true)
)

func newStatusCmd() *cobra.Command {
	var opts hook.Options

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the scanner hook is installed",
		Long:  `Resolves the target hooks directory and reports the installed hook state, any preserved prior hook, and the container runtime the scanner wrapper would use.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := newInstaller(cmd).Status(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to inspect hooks: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), renderStatus(report))
			return nil
		},
	}

	statusCmd.Flags().BoolVar(&opts.Global, "global", false, "inspect the global hooks directory instead of the repo's")
	statusCmd.Flags().StringVar(&opts.HooksPath, "hooks-path", "", "explicit hooks directory override (ignored with --global)")

	return statusCmd
}

func renderStatus(report *hook.StatusReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hooks directory: %s\n", report.HooksDir)

	switch report.State {
	case hook.StateOwned:
		fmt.Fprintf(&b, "Pre-commit hook: %s\n", installedStyle.Render("installed"))
	case hook.StateForeign:
		fmt.Fprintf(&b, "Pre-commit hook: %s\n", foreignStyle.Render("foreign hook present"))
	default:
		fmt.Fprintf(&b, "Pre-commit hook: %s\n", detailStyle.Render("not installed"))
	}

	if report.LegacyPresent {
		fmt.Fprintf(&b, "Preserved hook:  %s (runs before the scanner)\n", hook.LegacyHookName)
	}
	if report.WrapperPresent {
		fmt.Fprintf(&b, "Scanner wrapper: %s\n", hook.WrapperName)
	}
	fmt.Fprintf(&b, "Container runtime: %s\n", detailStyle.Render(report.Runtime))

	return b.String()
}
