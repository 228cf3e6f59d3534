// Package ui provides the cobra command-line interface for raidnight.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/config"
	"github.com/arosati/raidnight/internal/db"
	"github.com/arosati/raidnight/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   avail.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool
}

// NewApp creates a new CLI application with the given config. The
// repository is opened on first use so commands like version and config
// work without a database.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "raidnight",
		Short: "Find the night your whole party can play",
		Long: `Raidnight tracks weekly availability on a half-hour grid and finds
the session windows where everyone in your party is free.

Run without arguments to open the interactive grid.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.openRepo()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(repo, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to a file in the working directory)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.findCmd())
	a.root.AddCommand(a.summaryCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.partyCmd())

	return a
}

// openRepo opens the SQLite repository lazily.
func (a *App) openRepo() (avail.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return a.repo, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("raidnight %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if it was opened.
func (a *App) Close() error {
	if a.repo != nil {
		return a.repo.Close()
	}
	return nil
}
