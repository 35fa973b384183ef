// jumper is a tilt-controlled endless jumper for the terminal.
//
// Usage:
//
//	jumper list              - List available game variants
//	jumper play [variant]    - Play (jumper or jumper-tilt)
//	jumper sim               - Run the simulation headlessly
//	jumper config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--log <path>    - Write logs to a file
//	--verbose       - Log debug events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tilt-jumper/internal/games/jumper"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Tilt Jumper - bounce upward, steer by tilting",
	Long: `Tilt Jumper is an endless vertical jumper. The ball bounces on its own;
you steer it sideways by tilting. Collect coins to win, and don't fall
out of view.

Available commands:
  list     - Show the game variants
  play     - Play in the terminal
  sim      - Run a headless simulation
  config   - Print the default configuration

Examples:
  jumper play
  jumper play jumper-tilt --difficulty easy
  jumper sim --frames 3600 --steer sine --seed 42
  jumper config > ~/.arcade/configs/jumper.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug events")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
