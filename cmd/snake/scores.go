package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the best runs for the given variant (default: classic).

Examples:
  snake scores
  snake scores forgiving --limit 20
  snake scores --interactive
  snake scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse every variant in a scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	variant := variantArg(args)
	title := createGame(variant, config.DefaultSnakeConfig()).Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	if flagClear {
		if err := store.ClearScores(variant); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	runs, err := store.TopScores(variant, flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", variant)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Length", "Ticks", "Cause", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "------", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %-5s  %s\n",
			i+1, r.Score, r.Length, r.Ticks, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetVariantStats(variant); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Longest snake: %d\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.LongestRun)
	}
}
