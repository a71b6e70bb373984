// spacerun is a vertical space shooter for the terminal.
//
// Usage:
//
//	spacerun list              - List game modes
//	spacerun play [mode]       - Play a mode (default: spacerun)
//	spacerun menu              - Pick modes interactively, with session results
//	spacerun sim [mode]        - Run headless simulations and print results
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write the log to a file (the TUI owns the terminal)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/games/spacerun"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Game tuning flags shared by play, menu and sim
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacerun",
	Short: "SpaceRun - a space shooter in your terminal",
	Long: `SpaceRun is a vertical space shooter played in the terminal.

Hold the mouse button (or latch a touch with Space) and the ship homes in on
the pointer, firing as it goes. Shoot asteroids and enemies, dodge what you
cannot shoot, and pick up power-ups for health and a faster fire rate.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker with session results
  sim      - Headless simulation for tuning and replays

Examples:
  spacerun play
  spacerun play spacerun_timed --difficulty hard
  spacerun menu --log-file /tmp/spacerun.log
  spacerun sim --runs 20 --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the command logger. With --log-file set it writes to the
// file; otherwise it writes to fallback, and a nil fallback means no logger.
// The returned close function is always safe to call.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, func() {}, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}
	if out == nil {
		return nil, closeFn, nil
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacerun",
		Level:           level,
	})
	return logger, closeFn, nil
}

// validateDifficulty rejects unknown preset names before anything starts.
func validateDifficulty() error {
	switch flagDifficulty {
	case "", "easy", "normal", "hard", "fixed":
		return nil
	}
	return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
}

// prepareGame checks the tuning flags and hands them to the game package.
// An explicit config (--config or $SPACERUN_CONFIG) that cannot be loaded
// is an error rather than a silent fallback to the defaults.
func prepareGame() error {
	if err := validateDifficulty(); err != nil {
		return err
	}
	if _, err := config.LoadSpaceRun(flagConfig); err != nil {
		return err
	}
	spacerun.SetConfigPath(flagConfig)
	spacerun.SetDifficultyPreset(flagDifficulty)
	return nil
}
