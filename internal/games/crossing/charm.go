package crossing

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Charm is a bonus gem dropped under an enemy.
type Charm struct {
	Positioned
	Visible    bool
	PointValue int
	Remaining  int // ticks until it disappears
	Class      ColorClass
}

// CharmManager owns the fixed charm slots and the drop timer.
type CharmManager struct {
	charms     []Charm
	board      Board
	cfg        config.CharmConfig
	rng        *rand.Rand
	delay      int // seconds between drops
	timerStart int // game second the timer was last reset
}

// NewCharmManager allocates cfg.Slots hidden charms.
func NewCharmManager(board Board, cfg config.CharmConfig, rng *rand.Rand) *CharmManager {
	m := &CharmManager{
		charms: make([]Charm, cfg.Slots),
		board:  board,
		cfg:    cfg,
		rng:    rng,
	}
	for i := range m.charms {
		m.charms[i] = Charm{
			Positioned: Positioned{
				ID:           i,
				Row:          -1,
				Width:        float64(board.TileWidth),
				VisibleWidth: cfg.VisibleWidth,
			},
		}
	}
	m.Reset(0)
	return m
}

// Len returns the number of slots.
func (m *CharmManager) Len() int {
	return len(m.charms)
}

// At returns the charm in slot i.
func (m *CharmManager) At(i int) *Charm {
	return &m.charms[i]
}

// Visible returns how many charms are on the board.
func (m *CharmManager) Visible() int {
	n := 0
	for i := range m.charms {
		if m.charms[i].Visible {
			n++
		}
	}
	return n
}

// Reset hides every charm and restarts the drop timer.
func (m *CharmManager) Reset(seconds int) {
	for i := range m.charms {
		m.charms[i].Visible = false
		m.charms[i].Remaining = 0
	}
	m.resetTimer(seconds)
}

func (m *CharmManager) resetTimer(seconds int) {
	m.timerStart = seconds
	m.delay = randomInt(m.rng, m.cfg.MinDelay, m.cfg.MaxDelay)
}

// Delay returns the current drop delay in seconds.
func (m *CharmManager) Delay() int {
	return m.delay
}

// Update expires old charms and drops a new one when the timer allows.
// A failed drop leaves the timer alone so the next tick tries again.
func (m *CharmManager) Update(t Tick, w *World) {
	if t.Paused {
		return
	}

	for i := range m.charms {
		c := &m.charms[i]
		if !c.Visible {
			continue
		}
		c.Remaining--
		if c.Remaining <= 0 {
			c.Visible = false
		}
	}

	if t.Seconds-m.timerStart < m.delay {
		return
	}
	for i := range m.charms {
		c := &m.charms[i]
		if c.Visible {
			continue
		}
		if m.drop(c, w) {
			m.resetTimer(t.Seconds)
		}
		return
	}
}

// drop anchors the charm under the first enemy centred in a tile.
func (m *CharmManager) drop(c *Charm, w *World) bool {
	for i := 0; i < w.enemies.Len(); i++ {
		e := w.enemies.At(i)
		if !w.enemies.CenteredInTile(e, m.cfg.CenterTolerance) {
			continue
		}
		c.Row = e.Row
		c.X = e.X
		c.Y = e.Y + float64(m.cfg.DropOffset)
		c.Class = e.Class
		c.Sprite = CharmSprite(e.Class)
		c.PointValue = classValue(m.cfg.Points, e.Class)
		c.Remaining = m.cfg.Lifetime
		c.Visible = true
		w.sound.Play(SoundDrop)
		return true
	}
	return false
}

// Pickup awards the charm's points and hides it.
// Invisible charms cannot be picked up.
func (m *CharmManager) Pickup(c *Charm, seconds int, w *World) bool {
	if !c.Visible {
		return false
	}
	w.tracker.AddPoints(c.PointValue)
	w.sound.Play(SoundPickup)
	c.Visible = false
	m.resetTimer(seconds)
	return true
}

// Alpha is the render opacity. Charms fade out over the last tenth of their lifetime.
func (m *CharmManager) Alpha(c *Charm) float64 {
	if !c.Visible {
		return 0
	}
	fade := float64(m.cfg.Lifetime) / 10
	if fade <= 0 || float64(c.Remaining) >= fade {
		return 1
	}
	return core.ClampF(float64(c.Remaining)/fade, 0, 1)
}
