package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rule variants",
	Long:  `Shows every registered rule variant with its collision and reversal rules.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	snakeCfg, err := loadSnakeConfig()
	if err != nil {
		fail("%v", err)
	}

	variants := registry.List()
	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "ID", "Title", "Rules")
	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, v := range variants {
		rules := "?"
		if game, err := registry.Create(v.ID, snakeCfg); err == nil {
			if g, ok := game.(*snake.Game); ok {
				rules = describeRules(g.Rules())
			}
		}
		fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, v.ID, v.Title, rules)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a variant.")
}

// describeRules formats rule variants the way the config file names them.
func describeRules(r snake.Rules) string {
	return fmt.Sprintf("collision=%s reversal=%s", r.Collision, r.Reversal)
}
