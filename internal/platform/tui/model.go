package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

// publishEvery is the number of ticks between spectator snapshots.
const publishEvery = 4

// flashTicks is how long a platform message stays on the bottom line.
const flashTicks = 120

// Publisher receives world snapshots for spectators.
type Publisher interface {
	Publish(v any) error
}

// snapshotSource is implemented by games that expose a serializable snapshot.
type snapshotSource interface {
	Snapshot() crossing.Snapshot
}

// Options configures a game model.
type Options struct {
	Store     *storage.Store
	Publisher Publisher
	Logger    *log.Logger

	// Embedded makes quit return to the caller instead of ending the program.
	Embedded bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreboard *ScoreboardModel
	gen        uint64
	ticks      int
	flash      string
	flashLeft  int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gen:        nextTickGen(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Scores):
		m.openScoreboard()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// openScoreboard shows the session leaderboard, pausing a running game first.
// Nothing is known about the game before its first tick, so it is left alone.
func (m *Model) openScoreboard() {
	running := m.ticks > 0 && m.gameState.Playing() && !m.gameState.Paused
	if running && !m.inputFrame.Has(core.ActionSelect) {
		m.inputFrame.Set(core.ActionSelect)
	}
	sb := NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
	sb.SelectGame(m.game.ID())
	m.scoreboard = &sb
}

// updateScoreboard forwards input to the scoreboard and closes it on back.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Back and quit end a standalone scoreboard program; here they only close it.
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok || sb.IsGoingBack() || sb.IsQuitting() {
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events.
// The game renders at any size, so the world is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++

	m.recordScore()
	m.publish()

	if m.flashLeft > 0 {
		m.flashLeft--
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordScore saves the score once per game over.
func (m *Model) recordScore() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	best, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.opts.Logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
	}
	_, err = m.opts.Store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Reason: m.gameState.Reason,
		Skin:   m.gameState.Skin,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "reason", m.gameState.Reason)
	if m.gameState.Score > best {
		m.setFlash(fmt.Sprintf("new session best: %d", m.gameState.Score))
	}
}

// publish sends a snapshot to spectators every few ticks.
func (m *Model) publish() {
	if m.opts.Publisher == nil || m.ticks%publishEvery != 0 {
		return
	}
	src, ok := m.game.(snapshotSource)
	if !ok {
		return
	}
	if err := m.opts.Publisher.Publish(src.Snapshot()); err != nil {
		m.opts.Logger.Debug("snapshot publish failed", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setFlash("screenshot failed: " + err.Error())
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setFlash("screenshot failed: " + err.Error())
		return
	}
	m.setFlash("saved " + path)
}

func (m *Model) setFlash(msg string) {
	m.flash = msg
	m.flashLeft = flashTicks
	m.opts.Logger.Info(msg)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	if m.flashLeft > 0 && m.screen.Height() > 0 {
		m.screen.DrawTextColor(0, m.screen.Height()-1, m.flash, core.ColorBrightCyan)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user asked to leave an embedded game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
