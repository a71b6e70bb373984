package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacerun/internal/platform/tui"
	"github.com/vovakirdan/spacerun/internal/registry"
	"github.com/vovakirdan/spacerun/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start SpaceRun with a mode picker menu",
	Long: `Start SpaceRun in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode. Leaving a game
returns to the menu. Tab shows the results of the runs played since the menu
was started; they are kept in memory only.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Session results
  Q            - Quit

Examples:
  spacerun menu
  spacerun menu --fps 30
  spacerun menu --difficulty easy --log-file /tmp/spacerun.log`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	store, err := storage.OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session results: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	opts := tui.Options{Store: store, Logger: logger, Difficulty: flagDifficulty}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsResults {
			goBack, resErr := tui.RunResults(store, cfg.ScreenW, cfg.ScreenH)
			if resErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", resErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from results
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, runCfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			return
		}
	}
}
