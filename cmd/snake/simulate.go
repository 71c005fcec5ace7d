package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagTicks  int
	flagMoves  string
	flagFormat string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run a headless, seeded simulation",
	Long: `Run the simulation without a terminal UI and print what happened.

Moves are comma separated <tick>:<heading> pairs. The heading is applied
as input for that tick (1-based). Headings: l, u, r, d or left, up, right, down.

Runs with the same seed, variant and moves always produce the same output.

Examples:
  snake simulate --seed 42 --ticks 50
  snake simulate forgiving --moves 2:l,4:d --format yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to simulate")
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted input, e.g. 3:l,6:d")
	simulateCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or yaml")
}

// simRun summarizes one run that ended during a simulation.
type simRun struct {
	Score  int    `yaml:"score"`
	Length int    `yaml:"length"`
	Ticks  uint64 `yaml:"ticks"`
	Cause  string `yaml:"cause"`
}

// simReport is the result of a headless simulation.
type simReport struct {
	Variant string         `yaml:"variant"`
	Seed    int64          `yaml:"seed"`
	Ticks   int            `yaml:"ticks"`
	Runs    []simRun       `yaml:"runs"`
	Events  map[string]int `yaml:"events"`
	Final   snake.Snapshot `yaml:"final"`
}

// snapshotter is implemented by games that expose their full state.
type snapshotter interface {
	registry.Game
	Snapshot() snake.Snapshot
}

func runSimulate(_ *cobra.Command, args []string) {
	if flagTicks < 0 {
		fail("--ticks must not be negative")
	}
	moves, err := parseMoves(flagMoves)
	if err != nil {
		fail("%v", err)
	}

	snakeCfg, err := loadSnakeConfig()
	if err != nil {
		fail("%v", err)
	}
	game, ok := createGame(variantArg(args), snakeCfg).(snapshotter)
	if !ok {
		fail("variant %q does not support snapshots", variantArg(args))
	}

	report := simulate(game, flagSeed, flagTicks, moves)

	switch flagFormat {
	case "text":
		writeTextReport(os.Stdout, report)
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			fail("encoding report: %v", err)
		}
		os.Stdout.Write(out)
	default:
		fail("unknown format %q (want text or yaml)", flagFormat)
	}
}

// parseMoves parses "tick:heading" pairs into per-tick headings.
func parseMoves(s string) (map[uint64]snake.Heading, error) {
	moves := make(map[uint64]snake.Heading)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tickStr, headStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("simulate: move %q: want <tick>:<heading>", part)
		}
		tick, err := strconv.ParseUint(strings.TrimSpace(tickStr), 10, 64)
		if err != nil || tick == 0 {
			return nil, fmt.Errorf("simulate: move %q: tick must be a positive integer", part)
		}
		h, err := snake.ParseHeading(strings.TrimSpace(headStr))
		if err != nil {
			return nil, fmt.Errorf("simulate: move %q: %w", part, err)
		}
		moves[tick] = h
	}
	return moves, nil
}

// simulate resets the game with seed and steps it ticks times.
func simulate(game snapshotter, seed int64, ticks int, moves map[uint64]snake.Heading) simReport {
	game.Reset(core.RuntimeConfig{Seed: seed})

	report := simReport{
		Variant: game.ID(),
		Seed:    seed,
		Ticks:   ticks,
		Events:  make(map[string]int),
	}

	for i := uint64(1); i <= uint64(ticks); i++ {
		in := core.NewInputFrame()
		if h, ok := moves[i]; ok {
			in = core.InputOf(h.Action())
		}
		res := game.Step(in)
		for _, ev := range res.Events {
			report.Events[ev.Kind.String()]++
			if ev.Kind == core.EventGameOver {
				report.Runs = append(report.Runs, simRun{
					Score:  ev.Score,
					Length: ev.Length,
					Ticks:  ev.Ticks,
					Cause:  ev.Reason,
				})
			}
		}
	}

	report.Final = game.Snapshot()
	return report
}

// writeTextReport prints a summary followed by the final grid.
func writeTextReport(w io.Writer, r simReport) {
	fmt.Fprintf(w, "Variant: %s  Seed: %d  Ticks: %d\n", r.Variant, r.Seed, r.Ticks)
	fmt.Fprintf(w, "Runs ended: %d\n", len(r.Runs))
	for i, run := range r.Runs {
		fmt.Fprintf(w, "  %d. score=%d length=%d ticks=%d cause=%s\n",
			i+1, run.Score, run.Length, run.Ticks, run.Cause)
	}

	kinds := make([]string, 0, len(r.Events))
	for k := range r.Events {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	fmt.Fprintln(w, "Events:")
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-16s %d\n", k, r.Events[k])
	}

	f := r.Final
	fmt.Fprintf(w, "Final: tick=%d score=%d length=%d heading=%s\n",
		f.Tick, f.Score, len(f.Snake), f.Heading)
	fmt.Fprintln(w, renderGrid(f))
}

// renderGrid draws the snapshot with y=0 on the bottom row.
func renderGrid(s snake.Snapshot) string {
	width, height := s.Width, s.Height
	screen := core.NewScreen(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			screen.Set(x, y, '.')
		}
	}

	plot := func(p core.Point, r rune) {
		screen.Set(p.X, height-1-p.Y, r)
	}
	for _, p := range s.Food {
		plot(p, '*')
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		r := 'o'
		if i == 0 {
			r = '@'
		}
		plot(s.Snake[i], r)
	}
	return screen.String()
}
