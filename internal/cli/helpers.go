package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/faizmokh/syllabus/internal/config"
	"github.com/faizmokh/syllabus/internal/files"
	"github.com/faizmokh/syllabus/internal/schedule"
)

// scheduleOptions are the flags every schedule-reading command shares.
type scheduleOptions struct {
	file  string
	today string
	debug bool
}

func (o *scheduleOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Schedule file (default: config schedule or schedule.txt under SYLLABUS_HOME)")
	cmd.Flags().StringVar(&o.today, "today", "", "Treat this MM/DD/YYYY day as today")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "Log parser activity to stderr")
}

type loadedSchedule struct {
	path  string
	cfg   *config.Config
	weeks []schedule.Week
}

// loader resolves config, logging and the schedule path once so the schedule
// can be (re)loaded on demand.
type loader struct {
	manager *files.Manager
	cfg     *config.Config
	path    string
	logger  *slog.Logger
	opts    []schedule.Option
}

func newLoader(ctx context.Context, cmd *cobra.Command, manager *files.Manager, o *scheduleOptions) (*loader, error) {
	cfg, err := config.Load(ctx, manager.ConfigPath())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg, o.debug)
	if err != nil {
		return nil, err
	}

	parserOpts := []schedule.Option{schedule.WithLogger(logger)}
	if o.today != "" {
		today, err := schedule.ParseDay(o.today)
		if err != nil {
			return nil, fmt.Errorf("--today: %w", err)
		}
		parserOpts = append(parserOpts, schedule.WithClock(func() time.Time { return today.Time() }))
	}

	name := o.file
	if name == "" {
		name = cfg.Schedule
	}

	return &loader{
		manager: manager,
		cfg:     cfg,
		path:    manager.SchedulePath(name),
		logger:  logger,
		opts:    parserOpts,
	}, nil
}

func (l *loader) load(ctx context.Context) ([]schedule.Week, error) {
	l.logger.Debug("loading schedule", "path", l.path)
	return schedule.NewReader(l.manager, l.opts...).Load(ctx, l.path)
}

func loadSchedule(ctx context.Context, cmd *cobra.Command, manager *files.Manager, o *scheduleOptions) (loadedSchedule, error) {
	l, err := newLoader(ctx, cmd, manager, o)
	if err != nil {
		return loadedSchedule{}, err
	}
	weeks, err := l.load(ctx)
	if err != nil {
		return loadedSchedule{}, err
	}
	return loadedSchedule{path: l.path, cfg: l.cfg, weeks: weeks}, nil
}

func newLogger(w io.Writer, cfg *config.Config, debug bool) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func formatWeek(week schedule.Week) string {
	marker := " "
	if week.CurrentWeek {
		marker = "*"
	}

	var builder strings.Builder
	builder.Grow(32 + len(week.Label) + len(week.Topic) + len(week.Project))

	fmt.Fprintf(&builder, "%s Week %s", marker, strings.TrimSpace(week.Label))
	if !week.Date.IsZero() {
		builder.WriteString(" (")
		builder.WriteString(week.Date.String())
		builder.WriteString(")")
	}
	if topic := strings.TrimSpace(week.Topic); topic != "" {
		builder.WriteString(": ")
		builder.WriteString(topic)
	}
	if project := strings.TrimSpace(week.Project); project != "" {
		builder.WriteString(" [project: ")
		builder.WriteString(project)
		builder.WriteString("]")
	}

	return builder.String()
}

func printWeeks(cmd *cobra.Command, weeks []schedule.Week) error {
	out := cmd.OutOrStdout()
	if len(weeks) == 0 {
		fmt.Fprintln(out, "(no weeks)")
		return nil
	}

	current := lipgloss.NewRenderer(out).NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	for _, week := range weeks {
		line := formatWeek(week)
		if week.CurrentWeek {
			line = current.Render(line)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
