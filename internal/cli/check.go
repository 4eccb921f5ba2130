package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/syllabus/internal/files"
)

func newCheckCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var opts scheduleOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the schedule file without printing it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadSchedule(ctx, cmd, manager, &opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch len(loaded.weeks) {
			case 0:
				fmt.Fprintf(out, "OK: %s has no weeks\n", loaded.path)
			case 1:
				fmt.Fprintf(out, "OK: %s has 1 week starting %s\n", loaded.path, loaded.weeks[0].Date)
			default:
				fmt.Fprintf(out, "OK: %s has %d weeks starting %s\n", loaded.path, len(loaded.weeks), loaded.weeks[0].Date)
			}
			return nil
		},
	}

	opts.bind(cmd)

	return cmd
}
