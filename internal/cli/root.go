package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/syllabus/internal/files"
	"github.com/faizmokh/syllabus/internal/ui"
	"github.com/faizmokh/syllabus/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var opts scheduleOptions

	cmd := &cobra.Command{
		Use:   "syllabus",
		Short: "Read a course schedule and see which week you are in.",
		Long: `syllabus reads a plain-text schedule of "field: value" lines:

  begin: 01/08/2024
  week: 1
  topic: Introduction
  project: Warm-up exercise

Each week is dated seven days after the previous one, starting at begin.
Run without a subcommand to browse the schedule interactively.`,
		Version: version.Info(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLoader(ctx, cmd, manager, &opts)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s - %s", version.Banner(), filepath.Base(l.path))
			m := ui.NewModel(ctx, title, l.load)
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.bind(cmd)

	cmd.AddCommand(
		newShowCommand(ctx, manager),
		newCurrentCommand(ctx, manager),
		newCheckCommand(ctx, manager),
		newInitCommand(ctx, manager),
		newVersionCommand(),
	)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "syllabus %s\n", version.Info())
		},
	}
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/syllabus/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
