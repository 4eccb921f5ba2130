package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/syllabus/internal/files"
	"github.com/faizmokh/syllabus/internal/schedule"
)

func newCurrentCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var opts scheduleOptions

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the week that contains today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadSchedule(ctx, cmd, manager, &opts)
			if err != nil {
				return err
			}

			week, ok := schedule.Current(loaded.weeks)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No current week")
				return nil
			}
			return printWeeks(cmd, []schedule.Week{week})
		},
	}

	opts.bind(cmd)

	return cmd
}
