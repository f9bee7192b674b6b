package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session straight away, skipping the menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		ro := runOptions{autoStart: true}
		ro.difficulty, _ = cmd.Flags().GetString("difficulty")
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			ro.seed = &seed
		}
		return runApp(cmd, ro)
	},
}

func init() {
	playCmd.Flags().StringP("difficulty", "d", "", "Difficulty: easy, normal or hard (default from config)")
	playCmd.Flags().Uint64("seed", 0, "Seed for the word order, for reproducible runs")
}
