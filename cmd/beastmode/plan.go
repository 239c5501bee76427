// ABOUTME: CLI commands for generating training, meal, and supplement plans.
// ABOUTME: All plans derive from the stored profile on every invocation.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/beastmode/internal/fitness"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate plans from your profile",
	Long: `Generate plans from your stored profile.

Plans are recomputed on every call, so updating the profile updates
every plan.

Examples:
  beastmode plan training
  beastmode plan meals
  beastmode plan supplements`,
}

var planTrainingCmd = &cobra.Command{
	Use:     "training",
	Aliases: []string{"t"},
	Short:   "Show your weekly training split",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		plan := fitness.BuildTrainingPlan(p)
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println(plan.Title)
		for _, day := range plan.Days {
			fmt.Println()
			color.Cyan("%s", day.Label)
			for _, ex := range day.Exercises {
				fmt.Printf("  %-28s %-8s %s\n", ex.Name, ex.SetsReps, faint.Sprintf("rest %s", ex.Rest))
			}
		}

		fmt.Println()
		for _, note := range plan.Notes {
			fmt.Printf("  %s\n", note)
		}
		return nil
	},
}

var planMealsCmd = &cobra.Command{
	Use:     "meals",
	Aliases: []string{"m"},
	Short:   "Show your daily meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		plan := fitness.BuildMealPlan(p)
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("%d kcal/day", plan.Calories)
		fmt.Printf("  %s\n", faint.Sprintf("%dg protein / %dg carbs / %dg fat",
			plan.Macros.ProteinGrams, plan.Macros.CarbGrams, plan.Macros.FatGrams))

		for _, slot := range plan.Slots {
			fmt.Println()
			color.Cyan("%s %s", slot.Key, faint.Sprintf("(%s)", slot.TimeWindow))
			for _, opt := range slot.Options {
				fmt.Printf("  - %s\n", opt)
			}
		}

		fmt.Println()
		for _, tip := range plan.Tips {
			fmt.Printf("  %s\n", tip)
		}
		return nil
	},
}

var planSupplementsCmd = &cobra.Command{
	Use:     "supplements",
	Aliases: []string{"supps"},
	Short:   "Show your supplement recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		plan := fitness.BuildSupplementPlan(p)
		faint := color.New(color.Faint)

		color.New(color.Bold).Println("Baseline stack")
		for _, item := range plan.Baseline {
			printSupplement(item, faint)
		}

		if len(plan.GoalSpecific) > 0 {
			fmt.Println()
			color.New(color.Bold).Printf("For %s\n", p.Goal)
			for _, item := range plan.GoalSpecific {
				printSupplement(item, faint)
			}
		}

		fmt.Println()
		for _, note := range plan.Notes {
			fmt.Printf("  %s\n", note)
		}
		return nil
	},
}

func printSupplement(item fitness.SupplementItem, faint *color.Color) {
	fmt.Printf("  %-14s %-22s %s\n", item.Name, item.Dosage,
		faint.Sprintf("%s [%s]", item.Benefit, item.Priority))
	if item.Caveat != "" {
		fmt.Printf("    %s\n", item.Caveat)
	}
}

func init() {
	planCmd.AddCommand(planTrainingCmd)
	planCmd.AddCommand(planMealsCmd)
	planCmd.AddCommand(planSupplementsCmd)
	rootCmd.AddCommand(planCmd)
}
