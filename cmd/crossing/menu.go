package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a variant and left/right to pick a difficulty.
Quitting a game returns to the menu. Scores are kept until the program exits.

Controls:
  Up/Down/j/k     - Navigate variants
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Session scores
  Q/Esc           - Quit

Examples:
  crossing menu
  crossing menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := configureGame(); err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	crossing.SetLogger(logger)

	stopSound := setupSound(logger, false)
	defer stopSound()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if d, ok := game.(interface{ SetDifficulty(string) }); ok {
			d.SetDifficulty(menuResult.Difficulty)
		}

		// Fresh seed per game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting", "game", menuResult.GameID, "difficulty", menuResult.Difficulty)
		if err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger, Embedded: true}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
