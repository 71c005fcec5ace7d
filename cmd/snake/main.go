// snake is a fixed-timestep grid snake game for the terminal.
//
// Usage:
//
//	snake list               - List rule variants
//	snake play [variant]     - Play a variant (default: classic)
//	snake menu               - Start menu to pick variants interactively
//	snake serve              - Start SSH server for remote play
//	snake scores [variant]   - Show high scores for a variant
//	snake simulate [variant] - Run a headless, seeded simulation
//
// Global flags:
//
//	--fps <rate>          - Set input and redraw rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Load game config from a YAML file
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a fixed-timestep grid snake in your terminal",
	Long: `Snake runs a grid snake at a fixed simulation rate: steer the head,
eat food to grow, and avoid the walls and your own body.

Available commands:
  list      - Show the rule variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a headless seeded simulation

Examples:
  snake play
  snake play forgiving --difficulty hard
  snake menu
  snake serve --ssh :2222
  snake simulate --seed 42 --ticks 200 --moves 3:l,6:d`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Input sampling and redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadSnakeConfig loads the game config and applies the difficulty preset.
func loadSnakeConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if err := config.ApplySnakePreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// variantArg returns the variant named on the command line, or classic.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "classic"
}

// createGame builds a registered variant or exits with a hint.
func createGame(variant string, cfg config.SnakeConfig) registry.Game {
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}
	game, err := registry.Create(variant, cfg)
	if err != nil {
		fail("creating game: %v", err)
	}
	return game
}

// newLogger returns a CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
}

// interactiveLogger logs to --log-file, or nowhere while the alt screen is up.
// The returned func closes the file.
func interactiveLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	logger := newLogger(f)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { f.Close() }
}

// openStoreOptional opens the scores database, continuing without it on failure.
func openStoreOptional(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the platform config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
