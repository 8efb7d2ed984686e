// lightline is a terminal dungeon descent where light is the only currency.
//
// Usage:
//
//	lightline play            - Start a run in the terminal
//	lightline serve           - Start SSH server for remote play
//	lightline runs            - Print recorded runs
//	lightline history         - Browse recorded runs interactively
//	lightline stats           - Print aggregate run statistics
//	lightline simulate        - Run a headless autopilot for a seed
//
// Global flags:
//
//	--fps <rate>    - Set engine tick rate (default: 10)
//	--seed <value>  - Set run seed for reproducible descents (0 = random)
//	--db <path>     - Set database path (default: ~/.lightline/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   uint64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightline",
	Short: "Lightline - descend by lantern light in your terminal",
	Long: `Lightline is a deterministic descent: the same seed always carves the
same floors, rolls the same danger, and burns the same light. Every step
spends light onto the floor behind you, and nothing ever mints more.

Available commands:
  play      - Start a run directly in the terminal
  serve     - Start SSH server for remote play
  runs      - Print recorded runs
  history   - Browse recorded runs interactively
  stats     - Print aggregate run statistics
  simulate  - Run a headless autopilot for a seed

Examples:
  lightline play
  lightline play --seed 1234 --difficulty hard
  lightline serve --ssh :2222
  lightline simulate --seed 1234 --floors 5
  lightline runs --deepest`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Engine tick rate (ticks per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Run seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lightline/runs.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(simulateCmd)
}
