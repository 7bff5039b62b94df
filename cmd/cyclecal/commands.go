package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/cyclecal/internal/report"
	"github.com/username/cyclecal/pkg/clock"
	"github.com/username/cyclecal/pkg/dateutil"
	"github.com/username/cyclecal/pkg/random"
)

func weekdaysCmd() *cobra.Command {
	var first string

	cmd := &cobra.Command{
		Use:   "weekdays",
		Short: "List the days of the week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			firstDay := cfg.Week.FirstDay
			if first != "" {
				d, err := dateutil.ParseWeekday(first)
				if err != nil {
					return fmt.Errorf("--first: %w", err)
				}
				firstDay = d
			}

			logger.Debug("Listing weekdays", zap.Stringer("first", firstDay))
			return render(report.Weekdays(firstDay))
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "Day the week starts on (default from config, Monday)")
	return cmd
}

func monthsCmd() *cobra.Command {
	var first string
	var leap bool
	var year int

	cmd := &cobra.Command{
		Use:   "months",
		Short: "List months with their lengths and day-of-year offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			firstMonth := cfg.Year.FirstMonth
			if first != "" {
				m, err := dateutil.ParseMonth(first)
				if err != nil {
					return fmt.Errorf("--first: %w", err)
				}
				firstMonth = m
			}

			leapYear := leap
			if cmd.Flags().Changed("year") {
				leapYear = dateutil.IsLeapYear(year)
			}

			logger.Debug("Listing months",
				zap.Stringer("first", firstMonth),
				zap.Bool("leap_year", leapYear))
			return render(report.Months(firstMonth, leapYear))
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "Month the listing starts on (default from config, January)")
	cmd.Flags().BoolVar(&leap, "leap", false, "Use leap-year lengths")
	cmd.Flags().IntVar(&year, "year", 0, "Derive the leap flag from this year")
	cmd.MarkFlagsMutuallyExclusive("leap", "year")
	return cmd
}

func shiftCmd() *cobra.Command {
	var by int

	cmd := &cobra.Command{
		Use:       "shift weekday|month <name|ordinal>",
		Short:     "Move a weekday or month around its cycle",
		Example:   "  cyclecal shift weekday Friday --by 3\n  cyclecal shift month 1 --by -1",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"weekday", "month"},
		RunE: func(cmd *cobra.Command, args []string) error {
			result := report.ShiftResult{Kind: strings.ToLower(args[0]), By: by}

			switch result.Kind {
			case "weekday", "day":
				d, err := dateutil.ParseWeekday(args[1])
				if err != nil {
					return err
				}
				result.Kind = "weekday"
				result.From = d.String()
				result.To = d.Plus(by).String()
			case "month":
				m, err := dateutil.ParseMonth(args[1])
				if err != nil {
					return err
				}
				result.From = m.String()
				result.To = m.Plus(by).String()
			default:
				return fmt.Errorf("unknown cycle %q, want weekday or month", args[0])
			}

			return render(result)
		},
	}

	cmd.Flags().IntVar(&by, "by", 1, "Number of steps, negative to go back")
	return cmd
}

func todayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "today",
		Short:   "Show the weekday, week and month of today or of --date",
		Example: "  cyclecal today\n  cyclecal today --date 2024-02-29",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := clock.Default().Now()

			t := now
			if date != "" {
				parsed, err := dateutil.ParseDate(date)
				if err != nil {
					return fmt.Errorf("--date: %w", err)
				}
				t = parsed
			}

			logger.Debug("Describing date",
				zap.Time("date", t),
				zap.Stringer("first_day", cfg.Week.FirstDay))
			return render(report.Today(t, now, cfg.Week.FirstDay))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to describe: YYYY-MM-DD, DD.MM.YYYY or ISO 8601 (default today)")
	return cmd
}

func pickCmd() *cobra.Command {
	var count int
	var seed int64
	var from []string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick random days of the week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				random.SetSeed(seed)
			}

			var picked []dateutil.Weekday
			if len(from) == 0 {
				picked = random.SelectWorkingDays(count)
			} else {
				pool := make([]dateutil.Weekday, 0, len(from))
				for _, s := range from {
					d, err := dateutil.ParseWeekday(s)
					if err != nil {
						return fmt.Errorf("--from: %w", err)
					}
					pool = append(pool, d)
				}
				picked = random.SelectWeekdays(count, pool)
			}

			logger.Info("Picked days",
				zap.Int("count", count),
				zap.Stringers("days", picked))
			return render(report.WeekdayRows(picked))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 2, "Number of days to pick")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible picks")
	cmd.Flags().StringSliceVar(&from, "from", nil, "Days to pick from (default Monday-Friday)")
	return cmd
}
