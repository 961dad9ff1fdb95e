package crossing

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Enemy is a bug crossing one lane from left to right.
type Enemy struct {
	Positioned
	Speed         int // pixels per second
	Delay         int // ticks left before entering the board
	Class         ColorClass
	Zombie        bool
	ZombieCounter int
}

// EnemyPool owns a fixed set of enemies that are recycled in place.
type EnemyPool struct {
	enemies []Enemy
	board   Board
	cfg     config.EnemyConfig
	rng     *rand.Rand
	logger  *log.Logger
}

// NewEnemyPool allocates cfg.Count enemies parked off the board on row -1.
// Call InitAll before the first update.
func NewEnemyPool(board Board, cfg config.EnemyConfig, rng *rand.Rand, logger *log.Logger) *EnemyPool {
	p := &EnemyPool{
		enemies: make([]Enemy, cfg.Count),
		board:   board,
		cfg:     cfg,
		rng:     rng,
		logger:  logger,
	}
	for i := range p.enemies {
		p.enemies[i] = Enemy{
			Positioned: Positioned{
				ID:           i,
				X:            -float64(board.TileWidth),
				Row:          -1,
				Width:        float64(board.TileWidth),
				VisibleWidth: cfg.VisibleWidth,
				BehindBias:   cfg.BehindBias,
			},
		}
	}
	return p
}

// Len returns the pool size.
func (p *EnemyPool) Len() int {
	return len(p.enemies)
}

// At returns the enemy in slot i.
func (p *EnemyPool) At(i int) *Enemy {
	return &p.enemies[i]
}

// InitOne re-rolls lane, speed, delay and class and parks the enemy one tile left of the board.
func (p *EnemyPool) InitOne(e *Enemy) {
	e.Row = p.board.RandomEnemyRow(p.rng)
	e.Y = p.board.RowToY(e.Row, 0)
	e.X = -float64(p.board.TileWidth)
	e.Delay = randomInt(p.rng, p.cfg.MinDelay, p.cfg.MaxDelay)
	e.Speed = randomInt(p.rng, p.cfg.MinSpeed, p.cfg.MaxSpeed)
	e.Class = ClassForSpeed(e.Speed, p.cfg.SpeedBands)
	e.Sprite = EnemySprite(e.Class)
	e.Zombie = false
	e.ZombieCounter = p.cfg.ZombieLifetime

	p.logger.Debug("enemy init",
		"id", e.ID, "row", e.Row, "class", e.Class, "delay", e.Delay, "speed", e.Speed)
}

// InitAll re-initialises every enemy.
func (p *EnemyPool) InitAll() {
	for i := range p.enemies {
		p.InitOne(&p.enemies[i])
	}
}

// Update advances every enemy by one tick.
func (p *EnemyPool) Update(t Tick) {
	if t.Paused {
		return
	}
	for i := range p.enemies {
		p.updateOne(&p.enemies[i], t.DT)
	}
}

func (p *EnemyPool) updateOne(e *Enemy, dt float64) {
	if e.Delay > 0 {
		e.Delay--
	} else {
		e.X += float64(e.Speed) * dt
	}

	if e.X > p.board.WidthPx() || (e.Zombie && e.ZombieCounter <= 0) {
		p.InitOne(e)
	} else if e.Zombie {
		e.ZombieCounter--
	}
}

// CenteredInTile reports whether the enemy is on the board and its centre
// sits within tolerance of a column centre. Zombies never qualify.
func (p *EnemyPool) CenteredInTile(e *Enemy, tolerance float64) bool {
	if e.Zombie || e.Row < 0 {
		return false
	}
	if e.X <= 0 || e.X >= p.board.WidthPx() {
		return false
	}
	tw := float64(p.board.TileWidth)
	offset := math.Mod(e.X+e.Width/2, tw)
	return math.Abs(offset-tw/2) <= tw*tolerance
}

// KillPoints returns the score for turning the enemy into a zombie.
func (p *EnemyPool) KillPoints(e *Enemy) int {
	return classValue(p.cfg.KillPoints, e.Class)
}

// ZombieAlpha is the render opacity of a fading zombie.
func (p *EnemyPool) ZombieAlpha(e *Enemy) float64 {
	if !e.Zombie {
		return 1
	}
	return core.ClampF(float64(e.ZombieCounter)/float64(p.cfg.ZombieLifetime), 0, 1)
}

func classValue(table []int, c ColorClass) int {
	if c < 0 || int(c) >= len(table) {
		return 0
	}
	return table[c]
}

// randomInt draws uniformly from [lo, hi].
func randomInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
