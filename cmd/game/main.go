// skylands is a small 3-D platformer: run, jump between floating
// islands, collect coins and reach each level's goal.
//
// Usage:
//
//	skylands play                - Play from level 1
//	skylands replay <file>       - Re-simulate a recorded run
//	skylands scores              - Show the top recorded runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed   int64
	flagDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "skylands",
	Short: "Skylands - a floating-island platformer",
	Long: `Skylands is a 3-D platformer about hopping across floating islands.

Available commands:
  play     - Play the game
  replay   - Re-simulate a recorded run headlessly
  scores   - View the top recorded runs

Examples:
  skylands play
  skylands play --record run.json --watch
  skylands replay run.json
  skylands scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skylands/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
