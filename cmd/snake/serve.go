package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets their own session with a variant picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	snakeCfg, err := loadSnakeConfig()
	if err != nil {
		fail("%v", err)
	}

	logOut := os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("opening log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		FrameRate:   flagFPS,
		Snake:       snakeCfg,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting snake SSH server on %s\n", cfg.Address)
	fmt.Printf("Rules: %d ticks/s on a %dx%d arena\n",
		snakeCfg.Timing.TicksPerSecond, snakeCfg.Arena.Width, snakeCfg.Arena.Height)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(context.Background()); err != nil {
		fail("server: %v", err)
	}
}
