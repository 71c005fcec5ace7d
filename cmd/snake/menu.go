package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start snake with a variant picker menu",
	Long: `Start snake in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	snakeCfg, err := loadSnakeConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog := interactiveLogger()
	defer closeLog()

	store := openStoreOptional(logger)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.Variant == "" {
			break
		}

		game, err := registry.Create(menuResult.Variant, snakeCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
