package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/syllabus/internal/config"
	"github.com/faizmokh/syllabus/internal/files"
	"github.com/faizmokh/syllabus/internal/schedule"
)

func newInitCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		fileFlag  string
		beginFlag string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter schedule if none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			begin := schedule.Today()
			if beginFlag != "" {
				parsed, err := schedule.ParseDay(beginFlag)
				if err != nil {
					return fmt.Errorf("--begin: %w", err)
				}
				begin = parsed
			}

			cfg, err := config.Load(ctx, manager.ConfigPath())
			if err != nil {
				return err
			}
			name := fileFlag
			if name == "" {
				name = cfg.Schedule
			}
			path := manager.SchedulePath(name)

			created, err := manager.EnsureSchedule(path, begin.String())
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s beginning %s\n", path, begin)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Schedule file to create (default: config schedule or schedule.txt under SYLLABUS_HOME)")
	cmd.Flags().StringVar(&beginFlag, "begin", "", "First day of week 1 in MM/DD/YYYY (default: today)")

	return cmd
}
