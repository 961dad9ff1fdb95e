// Package crossing implements a lane-crossing arcade game.
// The player walks from the grass to the water across lanes of bugs,
// turning same-coloured bugs into zombies and collecting the gems they drop.
package crossing

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// soundPlayer is shared by games created after SetSoundPlayer.
var soundPlayer SoundPlayer

// logger receives debug output from games created after SetLogger.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSoundPlayer sets the audio backend. Nil restores the silent player.
func SetSoundPlayer(p SoundPlayer) {
	soundPlayer = p
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig loads the configured YAML, applies the preset and checks that a
// world can be built from it. The CLI calls it before starting so that bad
// configuration fails fast.
func LoadConfig() (config.CrossingConfig, error) {
	return loadConfig(difficultyPreset)
}

func loadConfig(preset config.DifficultyPreset) (config.CrossingConfig, error) {
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyCrossingPreset(&cfg, preset)
	}
	if _, err := NewBoard(cfg.Board.Rows, cfg.Board.Columns, cfg.Board.TileWidth, cfg.Board.TileHeight); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	classic bool
	preset  config.DifficultyPreset // overrides the CLI preset when set
	world   *World
	runtime core.RuntimeConfig
	err     error // config problem found at Reset, shown instead of the board
}

// New creates the type-matching variant.
func New() *Game {
	return &Game{}
}

// NewClassic creates the variant where every bug is deadly.
func NewClassic() *Game {
	return &Game{classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return "crossing_classic"
	}
	return "crossing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Crossing (Classic)"
	}
	return "Crossing"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.classic {
		return "Every bug is deadly, whatever your skin."
	}
	return "Match your skin to a bug's colour to zombify it."
}

// SetDifficulty overrides the package preset for this game only.
// Takes effect at the next Reset. Unknown names clear the override.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Difficulty returns the preset used at Reset, or "" for the config's own range.
func (g *Game) Difficulty() string {
	if g.preset != "" {
		return string(g.preset)
	}
	return string(difficultyPreset)
}

func (g *Game) policy() CollisionPolicy {
	if g.classic {
		return ClassicPolicy{}
	}
	return TypeMatchPolicy{}
}

// Reset builds a fresh world in demo mode.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.err = nil

	cfg, err := loadConfig(config.DifficultyPreset(g.Difficulty()))
	if err != nil {
		logger.Warn("using default config", "err", err)
		g.err = err
		cfg = config.DefaultCrossingConfig()
	}

	opts := Options{
		TickRate: runtime.TickRate,
		Seed:     runtime.Seed,
		Policy:   g.policy(),
		Sound:    soundPlayer,
		Logger:   logger,
	}
	w, err := NewWorld(cfg, opts)
	if err != nil {
		// Defaults always build; this only guards against a broken default table.
		g.err = err
		w, _ = NewWorld(config.DefaultCrossingConfig(), opts)
	}
	g.world = w
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.world.Step(in)
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := MinScreenSize(g.world.board)
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()))
		return
	}

	g.world.Draw(NewScreenRenderer(dst, DefaultSprites, g.world.board))

	if g.err != nil {
		dst.DrawTextColor(0, dst.Height()-1, "config: "+g.err.Error(), core.ColorRed)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:         w.tracker.Score(),
		Lives:         w.tracker.Lives(),
		RemainingTime: w.state.RemainingSeconds(),
		GameOver:      w.state.Mode() == ModeGameOver,
		Paused:        w.state.Paused(),
		Demo:          w.state.Mode() == ModeDemo,
		Reason:        w.state.Reason().String(),
		Skin:          w.player.Sprite,
	}
}

// World exposes the simulation for snapshots and tests.
func (g *Game) World() *World {
	return g.world
}

// Snapshot returns the current world snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Register both variants with the registry
func init() {
	registry.Register("crossing", func() registry.Game {
		return New()
	})
	registry.Register("crossing_classic", func() registry.Game {
		return NewClassic()
	})
}
