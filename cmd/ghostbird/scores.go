package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkoval/ghostbird/internal/platform/tui"
	"github.com/mkoval/ghostbird/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [course]",
	Short: "Show the run history for a course",
	Long: `Display the top 10 runs for the given course (default: classic).

With --tui, open an interactive scoreboard that cycles through every
course with recorded runs.

Examples:
  ghostbird scores
  ghostbird scores steep
  ghostbird scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	courseName := "classic"
	if len(args) > 0 {
		courseName = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(courseName, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run History - %s\n", courseName)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ghostbird play' to leave the first ghost behind!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Lives", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-8s  %s\n",
			i+1,
			entry.Score,
			entry.LivesLeft,
			fmt.Sprintf("%.1fs", entry.Duration),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if highScore, err := store.HighScore(courseName); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
