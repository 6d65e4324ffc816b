// ghostbird is a terminal avoidance game with deterministic replays: every
// finished run leaves a ghost that flies alongside your next attempt.
//
// Usage:
//
//	ghostbird play              - Play the built-in course
//	ghostbird play --course f   - Play a custom course file
//	ghostbird scores [course]   - Show the run history for a course
//	ghostbird check <file>      - Validate a course file
//	ghostbird serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - RNG seed for the first run (0 = fixed default)
//	--db <path>     - Runs database path (default: ~/.ghostbird/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghostbird",
	Short: "Ghostbird - dodge the pipes, race your ghosts",
	Long: `Ghostbird is a terminal side-scroller where every finished run is
recorded and replayed as a translucent ghost in your later attempts.
The simulation is fully deterministic: same course, same seed, same
inputs always produce the same flight.

Available commands:
  play     - Play a course
  scores   - View the run history
  check    - Validate a course file
  serve    - Start SSH server for remote play

Examples:
  ghostbird play
  ghostbird play --course ./steep.csv --ghosts 4
  ghostbird scores classic
  ghostbird check ./steep.csv
  ghostbird serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the first run (0 = fixed default)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ghostbird/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
}
