package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkoval/ghostbird/internal/course"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a course file",
	Long: `Parse a course file and report whether it is playable.

The format is CSV with a header row and three columns per obstacle:
gap-center fraction (0-1], gap-height fraction (0-1], spawn seconds.
Any malformed row fails validation with its line number.

Examples:
  ghostbird check ./steep.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	crs, err := course.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Course %q is valid.\n", crs.Name)
	fmt.Printf("  Obstacles: %d\n", len(crs.Templates))

	if len(crs.Templates) == 0 {
		fmt.Println("  Note: an empty course ends the session immediately.")
		return
	}

	last := 0.0
	for _, tpl := range crs.Templates {
		if tpl.SpawnTime > last {
			last = tpl.SpawnTime
		}
	}
	fmt.Printf("  Last spawn: %.1fs\n", last)
}
