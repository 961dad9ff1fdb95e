package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/audio"
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// configureGame passes the config flags to the game package and checks that
// the resulting configuration builds a world.
func configureGame() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	crossing.SetConfigPath(flagConfig)
	crossing.SetDifficultyPreset(flagDifficulty)

	if _, err := crossing.LoadConfig(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// parseLevel converts the --log-level flag.
func parseLevel() (log.Level, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return level, nil
}

// newFileLogger logs to ~/.crossing/crossing.log since the TUI owns the terminal.
// The returned function closes the file.
func newFileLogger() (*log.Logger, func(), error) {
	level, err := parseLevel()
	if err != nil {
		return nil, nil, err
	}

	dir := config.UserDir()
	if dir == "" {
		return nil, nil, fmt.Errorf("cannot determine home directory for log file")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "crossing.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "crossing",
	})
	return logger, func() { f.Close() }, nil
}

// setupSound installs the speaker backend, or a silent player when no audio
// device is available. The returned function stops playback.
func setupSound(logger *log.Logger, muted bool) func() {
	player, stop := newSoundPlayer(logger)
	player.SetMuted(muted)
	crossing.SetSoundPlayer(player)
	return stop
}

func newSoundPlayer(logger *log.Logger) (crossing.SoundPlayer, func()) {
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return crossing.NewSilentPlayer(), func() {}
	}
	return sm, sm.Cleanup
}
