// ABOUTME: CLI commands for the VIP cycle tracker.
// ABOUTME: Tracks compound, dosage, and schedule with progress per cycle.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/beastmode/internal/models"
	"github.com/spf13/cobra"
)

var (
	cycleCompound  string
	cycleDosage    string
	cycleFrequency string
	cycleStart     string
	cycleWeeks     int
	cycleNotes     string
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Track cycles (VIP)",
	Long: `Track cycles with start date, duration, and progress.

This is reference tracking only: beastmode never computes or suggests
dosages. Read 'beastmode education' before considering any cycle.

EXAMPLES:

  beastmode cycle add --compound "Testosterone Enanthate" \
      --dosage 250mg --frequency "2x per week" \
      --start 2026-02-01 --weeks 10
  beastmode cycle list
  beastmode cycle delete abc12345`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Chained so the root hook still opens storage.
		if root := cmd.Root(); root.PersistentPreRunE != nil {
			if err := root.PersistentPreRunE(cmd, args); err != nil {
				return err
			}
		}
		return requireVIP()
	},
}

// requireVIP blocks cycle and education commands for non-VIP profiles.
func requireVIP() error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	if !p.VIP {
		return fmt.Errorf("this area is VIP-only: run 'beastmode vip' to unlock")
	}
	return nil
}

var cycleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Track a new cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse("2006-01-02", cycleStart)
		if err != nil {
			return fmt.Errorf("invalid start date %q: use YYYY-MM-DD", cycleStart)
		}

		c := models.NewCycle(cycleCompound, cycleDosage, cycleFrequency, start, cycleWeeks)
		if cycleNotes != "" {
			c.WithNotes(cycleNotes)
		}

		if err := repo.CreateCycle(c); err != nil {
			return fmt.Errorf("failed to create cycle: %w", err)
		}

		color.Green("✓ Tracking %s", c.Compound)
		fmt.Printf("  %s %s, %s, %d weeks from %s\n",
			color.New(color.Faint).Sprint(c.ID.String()[:8]),
			c.Dosage, c.Frequency, c.DurationWeeks, c.StartDate.Format("2006-01-02"))
		return nil
	},
}

var cycleListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tracked cycles with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cycles, err := repo.ListCycles()
		if err != nil {
			return fmt.Errorf("failed to list cycles: %w", err)
		}

		if len(cycles) == 0 {
			fmt.Println("No cycles tracked.")
			return nil
		}

		now := time.Now()
		faint := color.New(color.Faint)
		for _, c := range cycles {
			progress := c.Progress(now)

			fmt.Printf("%s %s  %s %s\n",
				faint.Sprint(c.ID.String()[:8]),
				color.New(color.Bold).Sprint(c.Compound),
				c.Dosage, c.Frequency)

			state := fmt.Sprintf("%d days left", progress.DaysRemaining)
			if c.Finished(now) {
				state = color.GreenString("finished")
			}
			fmt.Printf("  %s %3d%%  %s  %s\n",
				progressBar(progress.PercentComplete, 100, 20),
				progress.PercentComplete,
				state,
				faint.Sprintf("%s + %dw", c.StartDate.Format("2006-01-02"), c.DurationWeeks))

			if c.Notes != nil && *c.Notes != "" {
				fmt.Printf("  %s\n", faint.Sprintf("(%s)", *c.Notes))
			}
		}
		return nil
	},
}

var cycleDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a tracked cycle",
	Long: `Delete a tracked cycle by its ID or ID prefix.

The ID prefix is shown in the first column of 'beastmode cycle list'.
If the prefix matches multiple cycles, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// Fetch first to show what is being deleted.
		c, err := repo.GetCycle(idOrPrefix)
		if err != nil {
			return fmt.Errorf("cycle not found: %s", idOrPrefix)
		}

		if err := repo.DeleteCycle(idOrPrefix); err != nil {
			return fmt.Errorf("failed to delete cycle: %w", err)
		}

		color.Yellow("✗ Deleted %s", c.Compound)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(c.ID.String()[:8]), c.Dosage)
		return nil
	},
}

func init() {
	cycleAddCmd.Flags().StringVar(&cycleCompound, "compound", "", "compound name")
	cycleAddCmd.Flags().StringVar(&cycleDosage, "dosage", "", "dosage, e.g. 250mg")
	cycleAddCmd.Flags().StringVar(&cycleFrequency, "frequency", "", "application frequency, e.g. '2x per week'")
	cycleAddCmd.Flags().StringVar(&cycleStart, "start", "", "start date (YYYY-MM-DD)")
	cycleAddCmd.Flags().IntVar(&cycleWeeks, "weeks", 0, "cycle length in weeks")
	cycleAddCmd.Flags().StringVar(&cycleNotes, "notes", "", "optional notes")

	cycleCmd.AddCommand(cycleAddCmd)
	cycleCmd.AddCommand(cycleListCmd)
	cycleCmd.AddCommand(cycleDeleteCmd)
	rootCmd.AddCommand(cycleCmd)
}
