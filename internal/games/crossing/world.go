package crossing

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Tick carries the per-tick values every component needs.
type Tick struct {
	DT      float64 // seconds per tick
	Paused  bool
	Seconds int // whole game seconds on the stopwatch
}

// Options configures a World. Zero values pick sensible defaults.
type Options struct {
	TickRate int
	Seed     int64
	Policy   CollisionPolicy
	Sound    SoundPlayer
	Logger   *log.Logger
	Clock    ClockSource // defaults to a TickClock driven by Step
}

// World owns all game state. Components receive it explicitly.
type World struct {
	cfg       config.CrossingConfig
	board     Board
	clock     ClockSource
	stopwatch *Stopwatch
	enemies   *EnemyPool
	player    *Player
	charms    *CharmManager
	tracker   *Tracker
	state     *StateMachine
	policy    CollisionPolicy
	sound     SoundPlayer
	logger    *log.Logger
	tickRate  int
	ticks     uint64
}

// NewWorld builds every component. Pools are allocated here and never again.
func NewWorld(cfg config.CrossingConfig, opts Options) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("crossing: %w", err)
	}
	board, err := NewBoard(cfg.Board.Rows, cfg.Board.Columns, cfg.Board.TileWidth, cfg.Board.TileHeight)
	if err != nil {
		return nil, err
	}
	if cfg.Board.TopPlayableRow >= board.BottomRow() {
		return nil, fmt.Errorf("crossing: top playable row %d leaves no room to move", cfg.Board.TopPlayableRow)
	}

	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Policy == nil {
		opts.Policy = TypeMatchPolicy{}
	}
	if opts.Sound == nil {
		opts.Sound = NewSilentPlayer()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = NewTickClock(opts.TickRate)
	}

	rng := rand.New(rand.NewSource(opts.Seed)) //#nosec G404 -- gameplay randomness, must be seedable
	w := &World{
		cfg:       cfg,
		board:     board,
		clock:     opts.Clock,
		stopwatch: NewStopwatch(opts.Clock),
		enemies:   NewEnemyPool(board, cfg.Enemies, rng, opts.Logger),
		player:    NewPlayer(board, cfg.Board, cfg.Player),
		charms:    NewCharmManager(board, cfg.Charms, rng),
		tracker:   NewTracker(cfg.Player.Lives, Skins[0]),
		state:     NewStateMachine(cfg.Game.Duration),
		policy:    opts.Policy,
		sound:     opts.Sound,
		logger:    opts.Logger,
		tickRate:  opts.TickRate,
	}

	w.enemies.InitAll()
	w.stopwatch.Start()
	return w, nil
}

// StartNewGame resets every component and enters Playing.
func (w *World) StartNewGame() {
	w.stopwatch.Reset()
	w.stopwatch.Start()
	w.tracker.Reset()
	w.player.Reset(0)
	w.charms.Reset(0)
	w.enemies.InitAll()
	w.state.begin()
	w.sound.Play(SoundStart)
	w.logger.Debug("new game", "policy", w.policy.Name(), "skin", w.player.Sprite)
}

// Step runs one tick: input, state machine, enemies, player, charms, tracker.
func (w *World) Step(in core.InputFrame) {
	if c, ok := w.clock.(interface{ Advance() }); ok {
		c.Advance()
	}
	w.ticks++

	for _, a := range in.Actions() {
		w.state.HandleAction(a, w)
	}
	w.state.Update(w)

	t := Tick{
		DT:      1 / float64(w.tickRate),
		Paused:  w.state.Paused(),
		Seconds: w.stopwatch.ElapsedSeconds(),
	}

	w.enemies.Update(t)
	if w.state.Mode() == ModePlaying {
		w.player.Update(t, w)
	}
	w.charms.Update(t, w)
	w.tracker.Update(t)
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.CrossingConfig { return w.cfg }

// Board returns the board geometry.
func (w *World) Board() Board { return w.board }

// Enemies returns the enemy pool.
func (w *World) Enemies() *EnemyPool { return w.enemies }

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Charms returns the charm manager.
func (w *World) Charms() *CharmManager { return w.charms }

// Tracker returns the score and lives tracker.
func (w *World) Tracker() *Tracker { return w.tracker }

// State returns the mode state machine.
func (w *World) State() *StateMachine { return w.state }

// Sound returns the sound collaborator.
func (w *World) Sound() SoundPlayer { return w.sound }

// Ticks returns the number of steps taken.
func (w *World) Ticks() uint64 { return w.ticks }

// logDebugReadout writes a one-line summary of the world to the log.
func (w *World) logDebugReadout() {
	w.logger.Info("debug",
		"tick", w.ticks,
		"mode", w.state.Mode(),
		"paused", w.state.Paused(),
		"remaining", w.state.RemainingSeconds(),
		"score", w.tracker.Score(),
		"lives", w.tracker.Lives(),
		"player_row", w.player.Row,
		"player_col", w.player.Col,
		"skin", w.player.Sprite,
		"charms", w.charms.Visible(),
		"charm_delay", w.charms.Delay(),
	)
	for i := 0; i < w.enemies.Len(); i++ {
		e := w.enemies.At(i)
		w.logger.Info("debug enemy",
			"id", e.ID, "row", e.Row, "x", int(e.X), "speed", e.Speed,
			"class", e.Class, "delay", e.Delay, "zombie", e.Zombie)
	}
}
