// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies from the configured backend to the target and updates config.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/beastmode/internal/charm"
	"github.com/harperreed/beastmode/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate data to another storage backend",
	Long: `Migrate beastmode data from the configured backend to another.

The current backend stays untouched; data is copied into the target
backend and the config is updated to use it. The target should be
empty before migrating.

BACKENDS:

  sqlite     ~/.local/share/beastmode/beastmode.db (default)
  markdown   profile.md, cycles/, and water/ under the data dir
  charm      Charm KV with automatic cloud sync

USAGE:

  beastmode migrate --to markdown --dry-run   # Preview
  beastmode migrate --to markdown             # Copy and switch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo == "" {
			return fmt.Errorf("missing --to: choose sqlite, markdown, or charm")
		}
		if migrateTo == cfg.GetBackend() {
			return fmt.Errorf("already using the %q backend", migrateTo)
		}

		var dst storage.Repository
		var err error
		dataDir := cfg.GetDataDir()
		switch migrateTo {
		case "sqlite":
			dst, err = storage.Open(filepath.Join(dataDir, "beastmode.db"))
		case "markdown":
			dst, err = storage.NewMarkdownStore(dataDir)
		case "charm":
			dst, err = charm.NewStore()
		default:
			return fmt.Errorf("unknown backend: %q", migrateTo)
		}
		if err != nil {
			return fmt.Errorf("open %s backend: %w", migrateTo, err)
		}
		defer dst.Close()

		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("read current data: %w", err)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
			if data.Profile != nil {
				fmt.Printf("Would migrate profile: %s\n", data.Profile.Name)
			}
			fmt.Printf("Would migrate %d cycles and %d water entries to %s.\n",
				len(data.Cycles), len(data.Water), migrateTo)
			return nil
		}

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		cfg.Backend = migrateTo
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("migrated, but failed to update config: %w", err)
		}

		color.Green("✓ Migrated to %s backend", migrateTo)
		if summary.Profile {
			fmt.Println("  Profile: migrated")
		}
		fmt.Printf("  Cycles: %d\n", summary.Cycles)
		fmt.Printf("  Water entries: %d\n", summary.Water)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "target backend (sqlite, markdown, charm)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
