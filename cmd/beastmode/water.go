// ABOUTME: CLI commands for the hydration plan and daily water log.
// ABOUTME: Schedule spreads 250ml cups evenly between 07:00 and 22:00.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/beastmode/internal/fitness"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:     "water",
	Aliases: []string{"w"},
	Short:   "Hydration plan and intake log",
	Long: `Hydration target, reminder schedule, and daily intake log.

The target is 35 ml per kg of body weight, scaled by goal. The
schedule splits the target into 250 ml cups spread between 07:00
and 22:00.

Examples:
  beastmode water schedule      # When to drink
  beastmode water log 500       # Log 500 ml now
  beastmode water status        # Today's progress`,
}

var waterScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show today's reminder schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		target := fitness.DailyWaterML(p.WeightKg, p.Goal)
		schedule := fitness.WaterSchedule(target)

		color.New(color.Bold).Printf("%d ml/day", target)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("(%d cups of 250 ml)", len(schedule)))
		fmt.Println()
		for _, at := range schedule {
			fmt.Printf("  %s  drink 250 ml\n", at)
		}
		return nil
	},
}

var waterLogCmd = &cobra.Command{
	Use:   "log <ml>",
	Short: "Log water intake for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[0])
		}

		p, err := loadProfile()
		if err != nil {
			return err
		}

		today := time.Now()
		if err := repo.LogWater(today, ml); err != nil {
			return fmt.Errorf("failed to log water: %w", err)
		}

		consumed, err := repo.WaterConsumed(today)
		if err != nil {
			return fmt.Errorf("failed to read water total: %w", err)
		}
		target := fitness.DailyWaterML(p.WeightKg, p.Goal)

		color.Green("✓ Logged %d ml", ml)
		fmt.Printf("  %d / %d ml today\n", consumed, target)
		return nil
	},
}

var waterStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's water progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		consumed, err := repo.WaterConsumed(time.Now())
		if err != nil {
			return fmt.Errorf("failed to read water total: %w", err)
		}
		target := fitness.DailyWaterML(p.WeightKg, p.Goal)

		fmt.Printf("%d / %d ml  %s\n", consumed, target, progressBar(consumed, target, 20))
		if consumed >= target {
			color.Green("✓ Target reached")
		} else {
			fmt.Printf("  %d ml to go\n", target-consumed)
		}
		return nil
	},
}

// progressBar renders a fixed-width bar, clamped at full.
func progressBar(current, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func init() {
	waterCmd.AddCommand(waterScheduleCmd)
	waterCmd.AddCommand(waterLogCmd)
	waterCmd.AddCommand(waterStatusCmd)
	rootCmd.AddCommand(waterCmd)
}
