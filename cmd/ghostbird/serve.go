package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkoval/ghostbird/internal/config"
	"github.com/mkoval/ghostbird/internal/course"
	"github.com/mkoval/ghostbird/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeCourse string
	flagServeGhosts int
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ghostbird SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Each connection gets its own session and ghost corpus; run summaries
are stored per-server (all users share the same run history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ghostbird/host_key

Examples:
  ghostbird serve                           # Listen on :23235
  ghostbird serve --ssh :2222               # Listen on port 2222
  ghostbird serve --course ./steep.csv      # Serve a custom course
  ghostbird serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeCourse, "course", "", "Path to a course file (default: built-in)")
	serveCmd.Flags().IntVar(&flagServeGhosts, "ghosts", 0, "Max simultaneously rendered ghosts per connection")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	crs := course.Default()
	if flagServeCourse != "" {
		crs, err = course.Load(flagServeCourse)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	maxGhosts := flagServeGhosts
	if maxGhosts <= 0 {
		maxGhosts = gameCfg.Ghosts.MaxRendered
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		Course:      crs,
		Lives:       gameCfg.Session.Lives,
		MaxGhosts:   maxGhosts,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting ghostbird SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
