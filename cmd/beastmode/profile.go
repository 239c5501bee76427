// ABOUTME: CLI commands for setting and showing the user profile.
// ABOUTME: Show includes derived BMI, calorie, macro, and water targets.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/beastmode/internal/fitness"
	"github.com/harperreed/beastmode/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileName   string
	profileAge    int
	profileWeight float64
	profileHeight float64
	profileGender string
	profileGoal   string
	profileLevel  string
	profileDays   int
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Manage your profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save your profile",
	Long: `Save the profile every plan is generated from.

All of name, age, weight, height, gender, goal, and level are required.
Setting the profile again overwrites the previous one; the VIP flag is
preserved.

Examples:
  beastmode profile set --name Carlos --age 30 --weight 80 --height 180 \
      --gender male --goal gain-muscle --level intermediate
  beastmode profile set --name Ana --age 26 --weight 62 --height 165 \
      --gender female --goal lose-weight --level beginner --days 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gender, err := models.ParseGender(profileGender)
		if err != nil {
			return err
		}
		goal, err := models.ParseGoal(profileGoal)
		if err != nil {
			return err
		}
		level, err := models.ParseLevel(profileLevel)
		if err != nil {
			return err
		}

		p := &models.Profile{
			Name:         profileName,
			Age:          profileAge,
			WeightKg:     profileWeight,
			HeightCm:     profileHeight,
			Gender:       gender,
			Goal:         goal,
			Level:        level,
			TrainingDays: profileDays,
		}

		// Re-saving keeps an already-unlocked VIP flag.
		if existing, err := repo.GetProfile(); err == nil {
			p.VIP = existing.VIP
		}

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Saved profile for %s", p.Name)
		fmt.Printf("  %s, %s, %d days/week\n", p.Goal, p.Level, p.TrainingDays)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"s"},
	Short:   "Show your profile and derived targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		bmi := p.BMI()
		calories := fitness.DailyCalories(p)
		macros := fitness.Macros(calories, p.Goal)
		water := fitness.DailyWaterML(p.WeightKg, p.Goal)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("%s", p.Name)
		if p.VIP {
			color.New(color.FgYellow).Printf("  ★ VIP")
		}
		fmt.Println()
		fmt.Printf("  %d years, %.1f kg, %.1f cm, %s\n", p.Age, p.WeightKg, p.HeightCm, p.Gender)
		fmt.Printf("  Goal: %s  Level: %s  Training: %d days/week\n", p.Goal, p.Level, p.TrainingDays)
		fmt.Println()

		fmt.Printf("  BMI       %.1f %s\n", bmi, faint.Sprintf("(%s)", models.BMICategory(bmi)))
		fmt.Printf("  BMR       %.0f kcal\n", fitness.BMR(p))
		fmt.Printf("  Calories  %d kcal/day\n", calories)
		fmt.Printf("  Macros    %dg protein / %dg carbs / %dg fat\n",
			macros.ProteinGrams, macros.CarbGrams, macros.FatGrams)
		fmt.Printf("  Water     %d ml/day\n", water)

		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "your name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "lose-weight, gain-muscle, cut, or general-health")
	profileSetCmd.Flags().StringVar(&profileLevel, "level", "", "beginner, intermediate, or advanced")
	profileSetCmd.Flags().IntVar(&profileDays, "days", 4, "training days per week")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
