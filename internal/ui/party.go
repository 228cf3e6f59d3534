package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arosati/raidnight/internal/avail"
)

func (a *App) partyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Create, join, and inspect parties",
	}

	cmd.AddCommand(a.partyCreateCmd())
	cmd.AddCommand(a.partyJoinCmd())
	cmd.AddCommand(a.partyListCmd())
	cmd.AddCommand(a.partyShowCmd())

	return cmd
}

func (a *App) partyCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new party with yourself as host",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			repo, err := a.openRepo()
			if err != nil {
				return err
			}
			ctx := context.Background()

			hostID, err := a.ensureUser(ctx)
			if err != nil {
				return err
			}

			party, err := avail.NewParty(args[0], hostID)
			if err != nil {
				return err
			}
			if err := repo.CreateParty(ctx, party); err != nil {
				return fmt.Errorf("creating party: %w", err)
			}

			fmt.Printf("Created party %q\n", party.Name)
			fmt.Printf("Party ID: %s\n", party.ID)
			fmt.Println(formatMuted("Share this ID so others can join, and set party.id in your config."))
			return nil
		},
	}
}

func (a *App) partyJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <party-id>",
		Short: "Join an existing party",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			repo, err := a.openRepo()
			if err != nil {
				return err
			}
			ctx := context.Background()

			userID, err := a.ensureUser(ctx)
			if err != nil {
				return err
			}

			if err := repo.AddMember(ctx, args[0], userID); err != nil {
				return fmt.Errorf("joining party: %w", err)
			}

			party, err := repo.GetParty(ctx, args[0])
			if err != nil {
				return fmt.Errorf("loading party: %w", err)
			}
			fmt.Printf("Joined %q (%d/%d members)\n", party.Name, len(party.Members), party.Capacity)
			fmt.Println(formatMuted("Set party.id in your config to make this your default party."))
			return nil
		},
	}
}

func (a *App) partyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the parties you belong to",
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.openRepo()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if a.config.User.ID == "" {
				fmt.Println("No user configured yet. Create or join a party first.")
				return nil
			}

			parties, err := repo.ListParties(ctx, a.config.User.ID)
			if err != nil {
				return fmt.Errorf("listing parties: %w", err)
			}
			if len(parties) == 0 {
				fmt.Println("You are not in any party yet.")
				return nil
			}

			for _, p := range parties {
				marker := "  "
				if p.ID == a.config.Party.ID {
					marker = formatPreferred("* ")
				}
				fmt.Printf("%s%s (%d/%d members)  %s\n", marker, formatHeader(p.Name), len(p.Members), p.Capacity, formatMuted(p.ID))
			}
			return nil
		},
	}
}

func (a *App) partyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [party-id]",
		Short: "Show a party's members",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			flag := ""
			if len(args) == 1 {
				flag = args[0]
			}
			id, err := a.resolveParty(flag)
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

			fmt.Println(formatHeader(party.Name))
			fmt.Printf("%d/%d members\n", len(party.Members), party.Capacity)
			for _, m := range party.Members {
				label := m
				if m == party.HostID {
					label += " (host)"
				}
				if m == a.config.User.ID {
					label += " (you)"
				}
				fmt.Printf("  %s\n", label)
			}
			return nil
		},
	}
}

// ensureUser registers the configured user on first use and persists
// the generated ID back to the config file.
func (a *App) ensureUser(ctx context.Context) (string, error) {
	repo, err := a.openRepo()
	if err != nil {
		return "", err
	}

	name := a.config.User.Name
	if name == "" {
		name = "player"
	}
	id, err := repo.CreateUser(ctx, a.config.User.ID, name)
	if err != nil {
		return "", fmt.Errorf("registering user: %w", err)
	}

	if id != a.config.User.ID {
		a.config.User.ID = id
		if err := a.config.Save(); err != nil {
			return "", fmt.Errorf("saving user id to config: %w", err)
		}
	}
	return id, nil
}
