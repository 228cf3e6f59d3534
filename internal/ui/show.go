package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/dateutil"
)

func (a *App) showCmd() *cobra.Command {
	var weekArg string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your saved availability for a week",
		Example: `  raidnight show
  raidnight show --week=2026-02-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			weekStart, err := resolveWeek(weekArg)
			if err != nil {
				return err
			}

			repo, err := a.openRepo()
			if err != nil {
				return err
			}

			week, err := repo.LoadWeek(context.Background(), a.config.User.ID, weekStart)
			if err != nil {
				return fmt.Errorf("loading week: %w", err)
			}

			fmt.Println(formatHeader("Week of " + dateutil.FormatWeekRange(weekStart)))
			fmt.Println(separator())

			if week.Len() == 0 {
				fmt.Println("No availability saved for this week.")
				return nil
			}

			for day := 0; day < avail.DaysPerWeek; day++ {
				runs := dayRuns(week, day)
				if len(runs) == 0 {
					continue
				}
				fmt.Println(formatHeader(avail.DayNames[day]))
				for _, r := range runs {
					fmt.Printf("  %s\n", formatRun(r))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&weekArg, "week", "", "Any date in the target week (YYYY-MM-DD, defaults to this week)")

	return cmd
}
