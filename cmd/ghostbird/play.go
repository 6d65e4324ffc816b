package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkoval/ghostbird/internal/config"
	"github.com/mkoval/ghostbird/internal/core"
	"github.com/mkoval/ghostbird/internal/course"
	"github.com/mkoval/ghostbird/internal/platform/tui"
	"github.com/mkoval/ghostbird/internal/replay"
	"github.com/mkoval/ghostbird/internal/session"
	"github.com/mkoval/ghostbird/internal/sim"
	"github.com/mkoval/ghostbird/internal/storage"
)

var (
	flagConfig    string
	flagCourse    string
	flagMaxGhosts int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a course",
	Long: `Start a play session. Every finished run seals a ghost recording
that flies alongside you on the next attempt; restarting mid-run
discards the unfinished recording.

Controls:
  Space/Up/W - Flap
  P/Esc      - Pause
  R          - Restart (any time)
  Q/Ctrl+C   - Quit

Examples:
  ghostbird play
  ghostbird play --course ./steep.csv
  ghostbird play --ghosts 4 --seed 99
  ghostbird play --config ./my-ghostbird.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagCourse, "course", "", "Path to a course file (default: built-in)")
	playCmd.Flags().IntVar(&flagMaxGhosts, "ghosts", 0, "Max simultaneously rendered ghosts (0 = config value)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	coursePath := flagCourse
	if coursePath == "" {
		coursePath = cfg.Session.Course
	}

	crs := course.Default()
	if coursePath != "" {
		crs, err = course.Load(coursePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	maxGhosts := flagMaxGhosts
	if maxGhosts <= 0 {
		maxGhosts = cfg.Ghosts.MaxRendered
	}

	// The default seed is fixed, not time-based: identical runs line up
	// exactly with their ghosts.
	seed := flagSeed
	if seed == 0 {
		seed = sim.DefaultSeed
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	}

	sync := replay.NewSynchronizer(maxGhosts)
	sess := session.New(crs, cfg.Session.Lives, seed, sync)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(sess, store, runtimeCfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
