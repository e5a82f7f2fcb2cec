package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskquest/internal/api"
	"taskquest/internal/config"
	"taskquest/internal/recurrence"
	"taskquest/internal/repository/sqlite"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	repo   sqlite.Repository
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags. The API
// is built from the repository here rather than injected, because flag
// overrides (like --horizon-years) can change how it must be configured.
func NewRootCommand(repo sqlite.Repository, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		repo:   repo,
		api:    api.NewWithHorizon(repo, cfg.Recurrence.HorizonYears),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tq",
		Short: "A command-line task tracker with point rewards",
		Long: `TaskQuest (tq) is a command-line task tracker that rewards completed tasks
with points and supports per-task recurrence rules.

EXAMPLES:
  tq add "Water the plants" --points 5       # Add a task worth 5 points
  tq complete 3                              # Complete task 3 and earn its points
  tq list                                    # List pending tasks
  tq list --all                              # Include completed and archived tasks
  tq recur 3 --every 2 --unit weeks          # Repeat task 3 every two weeks
  tq recur 3 --end on_date --end-date 2026-12-01 --skip-weekends
  tq next 3 --count 5                        # Show the next 5 occurrences of task 3
  tq chart                                   # Bar chart of points earned, last 7 days

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TQ_DB_DIR                              Database directory (default: ~/.tq)
    TQ_DB_FILENAME                         Database filename (default: tq.db)
    TQ_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TQ_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Chart Configuration:
    TQ_CHART_WIDTH                         Chart width in cells (default: 40)
    TQ_CHART_MIN_BAR_FRACTION              Minimum bar height fraction (default: 0.02)

  Recurrence Configuration:
    TQ_RECURRENCE_HORIZON_YEARS            How far ahead rule dates may lie (default: 2)

  Application Configuration:
    TQ_APP_TIMEOUT                         Application timeout (default: 60s)
    TQ_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  tq [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TQ_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TQ_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TQ_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TQ_DB_WRITE_TIMEOUT)")

	flags.Int("chart-width", 0, "Chart width in cells (overrides TQ_CHART_WIDTH)")
	flags.Float64("min-bar-fraction", 0, "Minimum bar height fraction (overrides TQ_CHART_MIN_BAR_FRACTION)")

	flags.Int("horizon-years", 0, "Recurrence date horizon in years (overrides TQ_RECURRENCE_HORIZON_YEARS)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides TQ_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TQ_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	addCmd := &cobra.Command{
		Use:   "add [task title]",
		Short: "Add a new task",
		Long:  "Add a new pending task with an optional point reward.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			points, _ := cmd.Flags().GetInt("points")
			return NewAddCommand(r.newApp()).Execute(ctx, args, points)
		},
	}
	addCmd.Flags().Int("points", 10, "Points awarded when the task is completed")

	// Complete command
	completeCmd := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Complete a task and earn its points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCompleteCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List pending tasks. Use --all to include completed and archived tasks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			showAll, _ := cmd.Flags().GetBool("all")
			return NewListCommand(r.newApp()).Execute(ctx, showAll)
		},
	}
	listCmd.Flags().Bool("all", false, "Include completed and archived tasks")

	// Recur command
	recurCmd := &cobra.Command{
		Use:   "recur <task-id>",
		Short: "Attach a recurrence rule to a task",
		Long: `Attach a recurrence rule to a task, replacing any existing rule.

The rule repeats every N days, weeks or months from the start date and ends
never, on a fixed date, or after a number of occurrences. Occurrences landing
on weekends can be skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			input, err := recurInputFromFlags(cmd)
			if err != nil {
				return err
			}
			return NewRecurCommand(r.newApp()).Execute(ctx, args, input)
		},
	}
	recurCmd.Flags().String("every", "1", "Repeat interval count")
	recurCmd.Flags().String("unit", "days", "Repeat interval unit: days, weeks or months")
	recurCmd.Flags().String("start", "", "Start date as YYYY-MM-DD (default: today)")
	recurCmd.Flags().String("end", "never", "End condition: never, on_date or after_occurrences")
	recurCmd.Flags().String("end-date", "", "End date as YYYY-MM-DD (required with --end on_date)")
	recurCmd.Flags().String("occurrences", "5", "Occurrence count (used with --end after_occurrences)")
	recurCmd.Flags().Bool("skip-weekends", false, "Skip occurrences that land on weekends")

	// Next command
	nextCmd := &cobra.Command{
		Use:   "next <task-id>",
		Short: "Show upcoming occurrences of a recurring task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			count, _ := cmd.Flags().GetInt("count")
			return NewNextCommand(r.newApp()).Execute(ctx, args, count)
		},
	}
	nextCmd.Flags().Int("count", 5, "Number of occurrences to show")

	// Chart command
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Show a bar chart of points earned over the last 7 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewChartCommand(r.newApp()).Execute(ctx)
		},
	}

	r.cmd.AddCommand(addCmd, completeCmd, listCmd, recurCmd, nextCmd, chartCmd)
}

// newApp builds an App bound to the current configuration
func (r *RootCommand) newApp() *App {
	return NewAppWithConfig(r.api, r.config)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags applies configuration overrides from global flags
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("db-write-timeout") {
		v, _ := flags.GetDuration("db-write-timeout")
		overrides.DBWriteTimeout = &v
	}
	if flags.Changed("chart-width") {
		v, _ := flags.GetInt("chart-width")
		overrides.ChartWidth = &v
	}
	if flags.Changed("min-bar-fraction") {
		v, _ := flags.GetFloat64("min-bar-fraction")
		overrides.ChartMinBarFraction = &v
	}
	if flags.Changed("horizon-years") {
		v, _ := flags.GetInt("horizon-years")
		overrides.RecurrenceHorizonYears = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return err
	}

	r.config = cfg
	// Rebuild the API so configuration that feeds it takes effect
	r.api = api.NewWithHorizon(r.repo, cfg.Recurrence.HorizonYears)
	return nil
}

// recurInputFromFlags assembles raw recurrence input from the recur command's
// flags. Count fields stay as raw text so the builder's defaulting applies.
func recurInputFromFlags(cmd *cobra.Command) (recurrence.Input, error) {
	every, _ := cmd.Flags().GetString("every")
	unit, _ := cmd.Flags().GetString("unit")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	endDate, _ := cmd.Flags().GetString("end-date")
	occurrences, _ := cmd.Flags().GetString("occurrences")
	skipWeekends, _ := cmd.Flags().GetBool("skip-weekends")

	input := recurrence.Input{
		FrequencyText:   every,
		Unit:            unit,
		EndCondition:    end,
		OccurrencesText: occurrences,
		SkipWeekends:    skipWeekends,
	}

	if start == "" {
		input.StartDate = timeNow()
	} else {
		startDate, err := parseDate(start)
		if err != nil {
			return recurrence.Input{}, fmt.Errorf("invalid --start date: %w", err)
		}
		input.StartDate = startDate
	}

	if endDate != "" {
		parsed, err := parseDate(endDate)
		if err != nil {
			return recurrence.Input{}, fmt.Errorf("invalid --end-date: %w", err)
		}
		input.EndDate = &parsed
	}

	return input, nil
}

// parseDate parses a YYYY-MM-DD date in the local timezone
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
