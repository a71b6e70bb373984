package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/platform/tui"
	"github.com/vovakirdan/spacerun/internal/registry"
	"github.com/vovakirdan/spacerun/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing SpaceRun. The mode defaults to "spacerun".

Controls:
  Mouse drag         - Move the ship toward the pointer while firing
  Arrows/WASD        - Move the aim cursor
  Space              - Latch or release a touch at the aim cursor
  P                  - Pause
  R                  - Restart (after game over)
  Esc/B              - Leave the game
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty with a single life
  fixed  - No progression, stays at config's initial level

Examples:
  spacerun play
  spacerun play spacerun_timed
  spacerun play --difficulty hard
  spacerun play --config ./my-spacerun.yaml --log-file run.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "spacerun"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'spacerun list' to see available modes.")
		os.Exit(1)
	}
	if err := prepareGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session results: %v\n", err)
		// Continue without results - game still works
		store = nil
	}

	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		Difficulty: flagDifficulty,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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
