// ABOUTME: CLI command for estimating meal nutrition from a photo.
// ABOUTME: Sends the image to a vision model and prints the estimate.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/beastmode/internal/fitness"
	"github.com/harperreed/beastmode/internal/vision"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <image-file>",
	Short: "Estimate calories and macros from a meal photo",
	Long: `Estimate calories and macros from a meal photo.

The image is sent to a vision model (gpt-4o by default) which
identifies the foods and estimates the portion. Results are
estimates, not measurements.

SETUP:

  export OPENAI_API_KEY=sk-...

  Or set openai_api_key in ~/.config/beastmode/config.json.
  openai_base_url and vision_model are also configurable there.

EXAMPLES:

  beastmode scan lunch.jpg
  beastmode scan ~/Pictures/dinner.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &vision.Client{
			APIKey:  cfg.GetOpenAIAPIKey(),
			BaseURL: cfg.GetOpenAIBaseURL(),
			Model:   cfg.GetVisionModel(),
		}

		fmt.Println("Analyzing photo...")
		est, err := client.AnalyzeFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		faint := color.New(color.Faint)

		color.New(color.Bold).Println("Identified foods")
		for _, food := range est.Foods {
			fmt.Printf("  - %s\n", food)
		}
		fmt.Println()
		fmt.Printf("  Calories  ~%.0f kcal\n", est.EstimatedCalories)
		fmt.Printf("  Macros    %.0fg protein / %.0fg carbs / %.0fg fat\n",
			est.ProteinG, est.CarbsG, est.FatG)
		if est.EstimatedPortion != "" {
			fmt.Printf("  Portion   %s\n", est.EstimatedPortion)
		}
		if est.Notes != "" {
			fmt.Printf("\n  %s\n", faint.Sprint(est.Notes))
		}

		// Relate the meal to the daily target when a profile exists.
		if p, err := repo.GetProfile(); err == nil {
			target := fitness.DailyCalories(p)
			share := est.EstimatedCalories / float64(target) * 100
			fmt.Printf("\n  %s\n", faint.Sprintf("~%.0f%% of your %d kcal daily target", share, target))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
