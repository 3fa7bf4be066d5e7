// Package cli wires the command line to configuration, logging, the input
// drivers and the keeper.
package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/ui"
)

const appName = "keepbusy"

const longDescription = `keepbusy simulates a person at the keyboard so the machine, and any
presence indicator watching it, never sees the session go idle.

The reading profile browses pages, scrolls and moves the mouse. The coding
profile switches windows, moves the caret and types shell snippets with the
occasional typo. Both pause while someone is actually using the computer.`

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, version string) int {
	root, err := NewRootCmd(version)
	if err == nil {
		err = root.ExecuteContext(ctx)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree. Running the root command is the same
// as running start.
func NewRootCmd(version string) (*cobra.Command, error) {
	root, err := newRunCmd(appName, version)
	if err != nil {
		return nil, err
	}
	root.Short = "Keep your session busy with humanlike activity"
	root.Long = longDescription
	root.Version = version
	root.SetVersionTemplate(appName + " {{.Version}}\n")

	start, err := newRunCmd("start", version)
	if err != nil {
		return nil, err
	}
	start.Short = "Start simulating activity"

	root.AddCommand(start, newVersionCmd(version))
	return root, nil
}

// newRunCmd returns a command carrying every run flag, bound to its own viper
// instance so root and start don't share state.
func newRunCmd(use, version string) (*cobra.Command, error) {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           use,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  keepbusy                          # pick an activity interactively
  keepbusy start -p reading -d 45m  # browse for 45 minutes
  keepbusy start -p coding --until 17:00 -b
  keepbusy start -p reading --dry-run --no-tui`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v, version)
		},
	}
	if err := config.BindFlags(cmd.Flags(), v); err != nil {
		return nil, err
	}
	return cmd, nil
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s/%s)\n", appName, version, runtime.GOOS, runtime.GOARCH)
		},
	}
}

// formatError renders err for the terminal. Messages carrying a details
// block after a blank line get a bordered box.
func formatError(err error) string {
	msg := err.Error()
	parts := strings.SplitN(msg, "\n\n", 2)
	if len(parts) == 2 {
		errorBox := ui.Current.Help.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4040"))

		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4040")).
			Render(parts[0])

		details := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Render(parts[1])

		return errorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
	}
	return ui.Current.Error.Render("Error: " + msg)
}
