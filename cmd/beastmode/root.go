// ABOUTME: Root Cobra command for beastmode CLI.
// ABOUTME: Opens the configured storage backend via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/beastmode/internal/config"
	"github.com/harperreed/beastmode/internal/models"
	"github.com/harperreed/beastmode/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "beastmode",
	Short: "Fitness and nutrition planning from your profile",
	Long: `Beastmode is a CLI tool that turns a short profile into a complete
training, nutrition, and hydration plan.

WHAT IT GENERATES:

  Calories     Harris-Benedict BMR, activity-scaled, goal-adjusted
  Macros       protein/carb/fat gram targets per goal
  Training     3, 4, or 5-day splits tuned to your level
  Meals        daily meal plan with options per slot
  Supplements  baseline stack plus goal-specific additions
  Water        daily target with an hourly reminder schedule

QUICK START:

  $ beastmode profile set --name Carlos --age 30 --weight 80 \
      --height 180 --gender male --goal gain-muscle --level intermediate
  $ beastmode profile show              # Derived targets
  $ beastmode plan training             # Weekly split
  $ beastmode plan meals                # Meal plan
  $ beastmode water schedule            # Reminder times
  $ beastmode water log 500             # Log 500 ml

VIP AREA:

  $ beastmode vip                       # Unlock VIP content
  $ beastmode education                 # Harm-reduction anabolics guide
  $ beastmode cycle add --compound "Test E" --dosage 250mg \
      --frequency "2x per week" --start 2026-02-01 --weeks 10
  $ beastmode cycle list                # Progress per tracked cycle

MEAL PHOTOS:

  $ beastmode scan lunch.jpg            # Estimate calories from a photo
  (requires OPENAI_API_KEY)

SYNC:

  With the charm backend, data syncs across devices via Charm Cloud,
  E2E encrypted with your SSH key.

  $ beastmode sync link                 # Link device to your account
  $ beastmode sync status               # Check sync status

MCP INTEGRATION:

  Run 'beastmode mcp' to start the Model Context Protocol server for
  use with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Data lives at ~/.local/share/beastmode (sqlite by default; markdown
  and charm backends are available via ~/.config/beastmode/config.json).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "install-skill" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadProfile fetches the stored profile, pointing at 'profile set'
// when none exists.
func loadProfile() (*models.Profile, error) {
	p, err := repo.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("no profile saved yet: run 'beastmode profile set' first")
	}
	return p, nil
}
