package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Player is the single controllable entity.
type Player struct {
	Positioned
	Col               int
	TypeIndex         int // index into Skins
	LastSecondCounted int

	board           Board
	topRow          int
	pointsPerSecond int
}

// NewPlayer creates the player on the start tile with the first skin.
func NewPlayer(board Board, bcfg config.BoardConfig, pcfg config.PlayerConfig) *Player {
	p := &Player{
		Positioned: Positioned{
			Width:        float64(board.TileWidth),
			VisibleWidth: pcfg.VisibleWidth,
			Sprite:       Skins[0],
		},
		board:           board,
		topRow:          bcfg.TopPlayableRow,
		pointsPerSecond: pcfg.PointsPerSecond,
	}
	p.Reset(0)
	return p
}

// Reset returns the player to the bottom row, middle column.
// The skin is kept.
func (p *Player) Reset(seconds int) {
	p.Row = p.board.BottomRow()
	p.Col = p.board.Columns / 2
	p.place()
	p.LastSecondCounted = seconds
}

func (p *Player) place() {
	p.X = p.board.ColumnX(p.Col)
	p.Y = p.board.RowToY(p.Row, 0)
}

// InPlay reports whether the player has left the two grass rows.
func (p *Player) InPlay() bool {
	return !p.board.IsGrass(p.Row)
}

// Update resolves collisions, then pickups, then awards time points.
func (p *Player) Update(t Tick, w *World) {
	if t.Paused {
		return
	}

	if !p.detectEnemyCollisions(t, w) {
		p.detectCharmPickups(t, w)
	}

	if !p.InPlay() {
		p.LastSecondCounted = t.Seconds
		return
	}
	if t.Seconds > p.LastSecondCounted {
		w.tracker.AddPoints(p.pointsPerSecond)
		p.LastSecondCounted = t.Seconds
	}
}

// detectEnemyCollisions returns true if the player was defeated this tick.
// Only the first defeating enemy is processed.
func (p *Player) detectEnemyCollisions(t Tick, w *World) bool {
	for i := 0; i < w.enemies.Len(); i++ {
		e := w.enemies.At(i)
		if e.Zombie || !Overlaps(p.Positioned, e.Positioned) {
			continue
		}

		switch w.policy.Resolve(p, e) {
		case OutcomePlayerDefeated:
			w.tracker.RemoveLife()
			w.sound.Play(SoundCollision)
			p.Reset(t.Seconds)
			return true
		case OutcomeEnemyDefeated:
			e.Zombie = true
			w.tracker.AddPoints(w.enemies.KillPoints(e))
			w.sound.Play(SoundZombie)
		}
	}
	return false
}

func (p *Player) detectCharmPickups(t Tick, w *World) {
	for i := 0; i < w.charms.Len(); i++ {
		c := w.charms.At(i)
		if c.Visible && Overlaps(p.Positioned, c.Positioned) {
			w.charms.Pickup(c, t.Seconds, w)
		}
	}
}

// MoveLeft moves one column left. Moves off the board are dropped.
func (p *Player) MoveLeft() bool {
	if p.Col-1 < 0 {
		return false
	}
	p.Col--
	p.place()
	return true
}

// MoveRight moves one column right.
func (p *Player) MoveRight() bool {
	if p.board.ColumnX(p.Col+1) > p.board.WidthPx() {
		return false
	}
	p.Col++
	p.place()
	return true
}

// MoveUp moves one row towards the water.
func (p *Player) MoveUp() bool {
	if p.Row-1 < p.topRow {
		return false
	}
	p.Row--
	p.place()
	return true
}

// MoveDown moves one row towards the grass.
func (p *Player) MoveDown() bool {
	if p.Row+1 > p.board.BottomRow() {
		return false
	}
	p.Row++
	p.place()
	return true
}

// NextSkin cycles forward through Skins and returns the new sprite.
func (p *Player) NextSkin() string {
	return p.setSkin(p.TypeIndex + 1)
}

// PreviousSkin cycles backward through Skins and returns the new sprite.
func (p *Player) PreviousSkin() string {
	return p.setSkin(p.TypeIndex - 1)
}

func (p *Player) setSkin(i int) string {
	p.TypeIndex = core.Wrap(i, len(Skins))
	p.Sprite = Skins[p.TypeIndex]
	return p.Sprite
}
