package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/faizmokh/syllabus/internal/config"
	"github.com/faizmokh/syllabus/internal/files"
	"github.com/faizmokh/syllabus/internal/schedule"
)

func newShowCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		opts       scheduleOptions
		formatFlag string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every week of the schedule.",
		Long:  "show parses the schedule and prints each week with its date. The current week is marked with '*'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadSchedule(ctx, cmd, manager, &opts)
			if err != nil {
				return err
			}

			format := loaded.cfg.Format
			if formatFlag != "" {
				format = strings.ToLower(formatFlag)
			}
			if err := config.ValidateFormat(format); err != nil {
				return err
			}

			switch format {
			case config.FormatJSON:
				return printWeeksJSON(cmd, loaded.weeks)
			case config.FormatYAML:
				return printWeeksYAML(cmd, loaded.weeks)
			default:
				return printWeeks(cmd, loaded.weeks)
			}
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json, or yaml (default: config format)")

	return cmd
}

func printWeeksJSON(cmd *cobra.Command, weeks []schedule.Week) error {
	if weeks == nil {
		weeks = []schedule.Week{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(weeks)
}

func printWeeksYAML(cmd *cobra.Command, weeks []schedule.Week) error {
	if weeks == nil {
		weeks = []schedule.Week{}
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(weeks); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
