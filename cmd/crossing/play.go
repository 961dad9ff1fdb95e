package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/platform/web"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

var (
	flagSpectate string
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: crossing).

Controls:
  Arrows/WASD        - Move
  Shift+Left/Right   - Change skin
  Space              - Start game, pause/resume, close help
  Esc                - Back to the title screen
  H/?                - Help
  M                  - Mute
  Ctrl+D             - Write a debug line to the log
  Tab                - Session scores
  Ctrl+S             - Screenshot
  Q/Ctrl+C           - Quit

Difficulty options (enemy speed range in pixels per second):
  easy   - 60 to 200
  normal - 75 to 300
  hard   - 120 to 400

Examples:
  crossing play
  crossing play crossing_classic
  crossing play --difficulty hard
  crossing play --config ./my-crossing.yaml
  crossing play --spectate :8080 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket snapshot stream on this address (e.g. :8080)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "crossing"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'crossing list' to see variants", gameID)
	}
	if err := configureGame(); err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	crossing.SetLogger(logger)

	stopSound := setupSound(logger, flagMute)
	defer stopSound()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.Options{Logger: logger}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if flagSpectate != "" {
		hub := web.NewBroadcaster()
		srv := web.NewServer(hub, logger)
		if err := srv.Start(flagSpectate); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("spectator shutdown", "error", err)
			}
		}()
		fmt.Fprintf(os.Stderr, "Spectators: ws://%s/ws\n", srv.Addr())
		opts.Publisher = hub
	}

	logger.Info("starting", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
