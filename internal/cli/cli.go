package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/adapters/export"
	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

type runner struct {
	open    Opener
	format  string
	verbose bool
}

// with opens the services, runs fn and closes them again.
func (r *runner) with(cmd *cobra.Command, fn func(ctx context.Context, svc *Services, format OutputFormat) error) error {
	format, err := parseFormat(strings.ToLower(r.format))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := r.open(ctx)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer svc.Close()

	return fn(ctx, svc, format)
}

// NewRootCmd creates the root command. open is called once per command run.
func NewRootCmd(open Opener) *cobra.Command {
	r := &runner{open: open}

	cmd := &cobra.Command{
		Use:   "hydrate",
		Short: "Track daily water intake",
		Long: `A CLI to log drinks against a daily hydration goal.
Uses the same store as the API server (STORE_DRIVER, SQLITE_PATH, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&r.format, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&r.verbose, "verbose", false, "Show individual drinks")

	cmd.AddCommand(
		r.drinkCmd(),
		r.todayCmd(),
		r.resetCmd(),
		r.historyCmd(),
		r.goalCmd(),
		r.prefsCmd(),
		r.quoteCmd(),
		r.statsCmd(),
		r.exportCmd(),
	)

	return cmd
}

func (r *runner) drinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drink <ml>",
		Short: "Log a drink for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(args[0]), "ml"))
			if err != nil {
				return domain.ErrInvalidAmount
			}

			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				day, err := svc.History.RecordDrinkNow(ctx, amount)
				if err != nil {
					return err
				}
				if format == FormatJSON {
					return writeJSON(cmd.OutOrStdout(), summarize(day))
				}

				last := day.Logs[len(day.Logs)-1]
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml.\n", last.Amount)
				writeDay(cmd.OutOrStdout(), day, r.verbose)
				return nil
			})
		},
	}
}

func (r *runner) todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				day, err := svc.History.Today(ctx)
				if err != nil {
					return err
				}
				if format == FormatJSON {
					return writeJSON(cmd.OutOrStdout(), summarize(day))
				}
				writeDay(cmd.OutOrStdout(), day, r.verbose)
				return nil
			})
		},
	}
}

func (r *runner) resetCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard every drink of a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				target := date
				if target == "" {
					target = svc.History.TodayDate()
				}
				day, err := svc.History.ResetDay(ctx, target)
				if err != nil {
					return err
				}
				if format == FormatJSON {
					return writeJSON(cmd.OutOrStdout(), summarize(day))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reset %s.\n", day.Date)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to reset (YYYY-MM-DD, default today)")
	return cmd
}

func (r *runner) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List every recorded day, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				days, err := svc.History.ListHistory(ctx)
				if err != nil {
					return err
				}

				if format == FormatJSON {
					out := make([]daySummary, 0, len(days))
					for _, d := range days {
						out = append(out, summarize(d))
					}
					return writeJSON(cmd.OutOrStdout(), out)
				}

				if len(days) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
					return nil
				}
				for _, d := range days {
					writeDay(cmd.OutOrStdout(), d, r.verbose)
				}
				return nil
			})
		},
	}
}

func (r *runner) goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Show the daily goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				return r.printGoal(cmd, svc.Goals.Current(), format)
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <ml>",
		Short: "Change the daily goal (at least 500 ml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				goal, err := svc.Goals.SaveInput(ctx, args[0])
				if err != nil {
					return err
				}
				return r.printGoal(cmd, goal, format)
			})
		},
	})

	return cmd
}

func (r *runner) printGoal(cmd *cobra.Command, goal int, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]int{"goal": goal})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %d ml\n", goal)
	return nil
}

func (r *runner) prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				return r.printPrefs(cmd, svc.Prefs.Current(), format)
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <key> <true|false>",
		Short:     "Change a preference",
		Args:      cobra.ExactArgs(2),
		ValidArgs: domain.PreferenceKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q (must be true or false)", args[1])
			}

			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				prefs, err := svc.Prefs.Set(ctx, args[0], value)
				if err != nil {
					return err
				}
				return r.printPrefs(cmd, prefs, format)
			})
		},
	})

	return cmd
}

func (r *runner) printPrefs(cmd *cobra.Command, p domain.Preferences, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), p)
	}
	writePrefs(cmd.OutOrStdout(), p)
	return nil
}

func (r *runner) quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				q, err := svc.Quotes.Next("")
				if err != nil {
					return err
				}
				if format == FormatJSON {
					return writeJSON(cmd.OutOrStdout(), q)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q\n  - %s\n", q.Text, q.Author)
				return nil
			})
		},
	}
}

func (r *runner) statsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show intake statistics for the last days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 || days > domain.MaxStatsRangeDays {
				return fmt.Errorf("--days must be between 1 and %d", domain.MaxStatsRangeDays)
			}

			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				end, err := time.Parse(domain.DateLayout, svc.History.TodayDate())
				if err != nil {
					return err
				}

				stats, err := svc.Stats.GetStats(ctx, domain.StatsInput{
					StartDate: end.AddDate(0, 0, -(days - 1)),
					EndDate:   end,
				})
				if err != nil {
					return err
				}

				if format == FormatJSON {
					return writeJSON(cmd.OutOrStdout(), stats)
				}
				writeStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days ending today")
	return cmd
}

func (r *runner) exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole history to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}

			return r.with(cmd, func(ctx context.Context, svc *Services, format OutputFormat) error {
				days, err := svc.History.ListHistory(ctx)
				if err != nil {
					return err
				}

				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				if err := export.WriteHistoryXLSX(f, days); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d days to %s\n", len(days), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Destination .xlsx file (required)")
	return cmd
}
