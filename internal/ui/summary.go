package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/dateutil"
	"github.com/arosati/raidnight/internal/summary"
)

func (a *App) summaryCmd() *cobra.Command {
	var (
		weekArg string
		partyID string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show times when at least half the party is free",
		Long: `Aggregate the party's availability per half-hour slot and list, for
each day, the times where at least half the members are available.
Members with no saved availability still count toward the half.`,
		Example: `  raidnight summary
  raidnight summary --week=2026-02-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			weekStart, err := resolveWeek(weekArg)
			if err != nil {
				return err
			}
			id, err := a.resolveParty(partyID)
			if err != nil {
				return err
			}

			repo, err := a.openRepo()
			if err != nil {
				return err
			}

			ctx := context.Background()
			party, err := repo.GetParty(ctx, id)
			if err != nil {
				return fmt.Errorf("loading party: %w", err)
			}
			members, err := repo.PartyMembers(ctx, id)
			if err != nil {
				return fmt.Errorf("loading party members: %w", err)
			}

			weeks := make(map[string]avail.Week, len(members))
			for _, memberID := range members {
				w, err := repo.LoadWeek(ctx, memberID, weekStart)
				if err != nil {
					slog.Warn("loading member week failed", "member", memberID, "error", err)
					w = avail.NewWeek()
				}
				weeks[memberID] = w
			}

			s := summary.Build(weeks)

			fmt.Println(formatHeader(fmt.Sprintf("%s, week of %s", party.Name, dateutil.FormatWeekRange(weekStart))))
			fmt.Println(formatMuted(fmt.Sprintf("Times when at least %d of %d members are free", summary.Threshold(s.Members), s.Members)))
			fmt.Println(separator())

			for day := 0; day < avail.DaysPerWeek; day++ {
				times := s.DayTimes(day, 6)
				fmt.Printf("%s %s\n", formatHeader(fmt.Sprintf("%-9s", avail.DayNames[day])), strings.Join(times, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&weekArg, "week", "", "Any date in the target week (YYYY-MM-DD, defaults to this week)")
	cmd.Flags().StringVar(&partyID, "party", "", "Party ID (defaults to party.id from config)")

	return cmd
}
