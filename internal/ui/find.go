package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/dateutil"
	"github.com/arosati/raidnight/internal/search"
)

func (a *App) findCmd() *cobra.Command {
	var (
		hours   int
		weekArg string
		partyID string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find session windows where the whole party is free",
		Long: `Search the party's availability for contiguous windows long enough
for a session of the given length. A window only counts when every
member is available for every half-hour of it; windows where any
member marked any half-hour of the range preferred are listed first.`,
		Example: `  raidnight find --hours=3
  raidnight find --hours=4 --week=2026-02-01
  raidnight find --hours=2 --party=8d9c...`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if hours < 1 || hours > 24 {
				return fmt.Errorf("session length must be between 1 and 24 hours, got %d", hours)
			}

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

			windows := search.FindWindows(weeks, hours)

			fmt.Println(formatHeader(fmt.Sprintf("%dh windows for %s, week of %s",
				hours, party.Name, dateutil.FormatWeekRange(weekStart))))
			fmt.Println(separator())

			if len(windows) == 0 {
				fmt.Println("No window works for all members. Try a shorter session or another week.")
				return nil
			}
			for _, w := range windows {
				fmt.Println(formatWindow(w))
			}
			fmt.Println()
			fmt.Println(formatMuted(formatFindFooter(len(windows), len(members))))
			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 0, "Session length in hours (required)")
	cmd.Flags().StringVar(&weekArg, "week", "", "Any date in the target week (YYYY-MM-DD, defaults to this week)")
	cmd.Flags().StringVar(&partyID, "party", "", "Party ID (defaults to party.id from config)")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

// resolveWeek parses an optional date argument into its week's Sunday.
func resolveWeek(arg string) (time.Time, error) {
	day, err := dateutil.ParseDate(arg)
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.WeekStart(day), nil
}

// resolveParty picks the explicit party flag over the configured one.
func (a *App) resolveParty(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if a.config.Party.ID != "" {
		return a.config.Party.ID, nil
	}
	return "", errors.New("no party specified: pass --party or set party.id in the config file")
}
