// ABOUTME: CLI command for unlocking the VIP tier on the stored profile.
// ABOUTME: VIP gates the education guide and the cycle tracker.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var vipCmd = &cobra.Command{
	Use:   "vip",
	Short: "Unlock VIP content",
	Long: `Unlock the VIP tier on your profile.

VIP unlocks:
  beastmode education    Harm-reduction guide on anabolic cycles
  beastmode cycle ...    Cycle tracker`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		if p.VIP {
			fmt.Println("VIP is already unlocked.")
			return nil
		}

		p.VIP = true
		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.New(color.FgYellow).Println("★ VIP unlocked")
		fmt.Println("Try 'beastmode education' and 'beastmode cycle list'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vipCmd)
}
