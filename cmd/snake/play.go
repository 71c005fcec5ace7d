package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given rule variant (default: classic).

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R                - Restart
  Ctrl+S           - Save a screenshot
  Esc/Q/Ctrl+C     - Quit

Difficulty options set the simulation rate:
  easy   - 4 ticks per second
  normal - 6 ticks per second
  hard   - 10 ticks per second

Examples:
  snake play
  snake play forgiving
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	snakeCfg, err := loadSnakeConfig()
	if err != nil {
		fail("%v", err)
	}
	game := createGame(variantArg(args), snakeCfg)

	logger, closeLog := interactiveLogger()
	defer closeLog()

	store := openStoreOptional(logger)

	runErr := tui.Run(game, store, logger, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
