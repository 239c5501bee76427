// ABOUTME: CLI command for the VIP harm-reduction education guide.
// ABOUTME: Renders static reference content; no dosage computation.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/beastmode/internal/fitness"
	"github.com/spf13/cobra"
)

var educationCmd = &cobra.Command{
	Use:     "education",
	Aliases: []string{"edu"},
	Short:   "Harm-reduction guide on anabolic cycles (VIP)",
	Long: `Harm-reduction education on anabolic cycles.

This content exists so that people who have already decided to use
can do so with less harm: required lab work, liver protection, PCT,
and natural alternatives. It is reference text only and replaces
neither a doctor nor blood work.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireVIP(); err != nil {
			return err
		}

		guide := fitness.AnabolicEducation()
		bold := color.New(color.Bold)

		color.Red("%s", guide.Warning)
		fmt.Println()

		bold.Println("Risks")
		for _, r := range guide.Risks {
			fmt.Printf("  - %s\n", r)
		}
		fmt.Println()

		bold.Println("Required lab work")
		for _, lab := range guide.RequiredLabs {
			fmt.Printf("  %-24s %s\n", lab.Name, color.New(color.Faint).Sprint(lab.Frequency))
		}
		fmt.Println()

		bold.Println("Liver protection")
		for _, c := range guide.LiverProtection {
			fmt.Printf("  %-14s %-18s %s\n", c.Name, c.Dosage, color.New(color.Faint).Sprint(c.Role))
		}
		fmt.Println()

		bold.Println(guide.PCT.Title)
		fmt.Printf("  %s\n", guide.PCT.Importance)
		for _, med := range guide.PCT.Medications {
			fmt.Printf("  %-14s %s\n", med.Name, med.Protocol)
		}
		fmt.Println()

		bold.Println("Common cycle protocols (reference only)")
		for _, p := range guide.CycleProtocols {
			color.Cyan("  %s %s", p.Name, color.New(color.Faint).Sprintf("(%s)", p.Level))
			fmt.Printf("    %s, %s, %s, %s\n", p.Compounds, p.Dosage, p.Frequency, p.Duration)
			fmt.Printf("    %s\n", p.Objective)
			for _, note := range p.Notes {
				fmt.Printf("    %s\n", color.New(color.Faint).Sprint(note))
			}
		}
		fmt.Println()

		bold.Println("PCT protocols")
		for _, p := range guide.PCTProtocols {
			color.Cyan("  %s", p.Name)
			fmt.Printf("    %s\n", color.New(color.Faint).Sprint(p.Indication))
			for _, step := range p.Steps {
				fmt.Printf("    - %s\n", step)
			}
		}
		fmt.Println()

		bold.Println("Safety checklists")
		for _, cl := range guide.SafetyChecklists {
			color.Cyan("  %s", cl.Title)
			for _, item := range cl.Items {
				fmt.Printf("    [ ] %s\n", item)
			}
		}
		fmt.Println()

		bold.Println("Natural alternatives")
		for _, alt := range guide.NaturalAlternatives {
			fmt.Printf("  - %s\n", alt)
		}
		fmt.Println()

		color.Yellow("%s", guide.FinalAdvice)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(educationCmd)
}
