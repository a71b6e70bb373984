package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/games/spacerun"
	"github.com/vovakirdan/spacerun/internal/registry"
	"github.com/vovakirdan/spacerun/internal/storage"
)

var (
	flagSimRuns      int
	flagSimSeconds   float64
	flagSimWidth     int
	flagSimHeight    int
	flagSimAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run headless simulations",
	Long: `Run SpaceRun without a terminal UI and print the outcome of each run.

Each run uses seed+i, so a pinned --seed reproduces the whole table. The
autopilot holds a touch and sweeps it across the screen; without it the ship
sits still and never fires. Simulation events go to the log at debug level.

Examples:
  spacerun sim --runs 10 --seed 1
  spacerun sim spacerun_timed --fps 120 --seconds 300
  spacerun sim --log-level debug --runs 1`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of runs")
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 120, "Simulated seconds per run (stops early at game over)")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Screen width in cells")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Screen height in cells")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", true, "Sweep a held touch across the screen")
}

// simOutcome is the result of one headless run.
type simOutcome struct {
	Seed     int64
	Ticks    int
	Elapsed  float64
	Snapshot spacerun.Snapshot
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := "spacerun"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		os.Exit(1)
	}
	if err := prepareGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	defer store.Close()

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	maxTicks := int(flagSimSeconds * float64(cfg.TickRate))

	outcomes := make([]simOutcome, 0, flagSimRuns)
	for i := range flagSimRuns {
		created, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		game, ok := created.(*spacerun.Game)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: mode %q cannot be simulated\n", gameID)
			os.Exit(1)
		}
		if logger.GetLevel() <= log.DebugLevel {
			game.SetLogger(logger.With("run", i+1))
		}

		cfg.Seed = baseSeed + int64(i)
		out := simulate(game, cfg, maxTicks, flagSimAutopilot)
		outcomes = append(outcomes, out)

		recordOutcome(store, logger, gameID, i+1, out)
		logger.Info("run finished", "run", i+1, "seed", out.Seed, "score", out.Snapshot.Score,
			"game_over", out.Snapshot.GameOver, "hash", fmt.Sprintf("%016x", out.Snapshot.Hash()))
	}

	fmt.Println(renderOutcomes(outcomes))

	if sum, err := store.Summarize(gameID); err == nil && sum.Runs > 0 {
		fmt.Printf("\n%d runs  best %d  average %.1f  simulated %s\n",
			sum.Runs, sum.Best, sum.Average, sum.PlayTime.Round(time.Second))
	}
}

// recordOutcome stores a run in the session store. A failed save is logged
// so a short summary is explained.
func recordOutcome(store *storage.Store, logger *log.Logger, gameID string, run int, out simOutcome) {
	_, err := store.SaveRun(storage.RunResult{
		GameID:     gameID,
		Score:      out.Snapshot.Score,
		Duration:   time.Duration(out.Elapsed * float64(time.Second)),
		Seed:       out.Seed,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		logger.Warn("cannot record run", "run", run, "err", err)
	}
}

// simulate runs a game until game over or maxTicks.
func simulate(game *spacerun.Game, cfg core.RuntimeConfig, maxTicks int, autopilot bool) simOutcome {
	game.Reset(cfg)

	in := core.NewInputFrame()
	ticks := 0
	for ticks < maxTicks && !game.State().GameOver {
		in.Clear()
		if autopilot {
			in.SetPointer(autopilotPointer(ticks, cfg))
		}
		game.Step(in)
		ticks++
	}

	return simOutcome{
		Seed:     cfg.Seed,
		Ticks:    ticks,
		Elapsed:  game.Elapsed(),
		Snapshot: game.Snapshot(),
	}
}

// autopilotPointer presses near the bottom centre, then drags the touch
// along a slow horizontal sine.
func autopilotPointer(tick int, cfg core.RuntimeConfig) core.Pointer {
	y := cfg.ScreenH - 3
	center := float64(cfg.ScreenW) / 2
	if tick == 0 {
		return core.Pointer{Kind: core.PointerPress, X: int(center), Y: y}
	}
	phase := float64(tick) / float64(cfg.TickRate) * 0.8
	x := center + math.Sin(phase)*center*0.8
	return core.Pointer{Kind: core.PointerDrag, X: int(x), Y: y}
}

// renderOutcomes formats the runs as a table.
func renderOutcomes(outcomes []simOutcome) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	lostStyle := cellStyle.Foreground(lipgloss.Color("9"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Run", "Seed", "Score", "HP", "Time", "Result", "Hash")

	for i, o := range outcomes {
		result := "alive"
		if o.Snapshot.GameOver {
			result = "destroyed"
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.FormatInt(o.Seed, 10),
			strconv.Itoa(o.Snapshot.Score),
			strconv.Itoa(o.Snapshot.Health),
			fmt.Sprintf("%.1fs", o.Elapsed),
			result,
			fmt.Sprintf("%016x", o.Snapshot.Hash()),
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 5 && row >= 0 && row < len(outcomes) && outcomes[row].Snapshot.GameOver {
			return lostStyle
		}
		return cellStyle
	})

	return t.Render()
}
