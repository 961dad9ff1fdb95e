package crossing

import (
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// recordingSound remembers every cue that was played.
type recordingSound struct {
	muted bool
	plays []string
}

func (s *recordingSound) Play(name string) {
	if !s.muted {
		s.plays = append(s.plays, name)
	}
}
func (s *recordingSound) SetMuted(m bool) { s.muted = m }
func (s *recordingSound) Muted() bool     { return s.muted }

func (s *recordingSound) count(name string) int {
	n := 0
	for _, p := range s.plays {
		if p == name {
			n++
		}
	}
	return n
}

func newTestWorld(t *testing.T, cfg config.CrossingConfig, policy CollisionPolicy) (*World, *recordingSound) {
	t.Helper()
	snd := &recordingSound{}
	w, err := NewWorld(cfg, Options{TickRate: 60, Seed: 42, Policy: policy, Sound: snd})
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	return w, snd
}

// step runs one tick with the given actions.
func step(w *World, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	w.Step(in)
}

func stepN(w *World, n int) {
	for i := 0; i < n; i++ {
		step(w)
	}
}

// parkEnemies moves every enemy off the board where it stays until moved by hand.
func parkEnemies(w *World) {
	for i := 0; i < w.enemies.Len(); i++ {
		e := w.enemies.At(i)
		e.Row = -1
		e.X = -float64(w.board.TileWidth)
		e.Delay = 1 << 30
		e.Zombie = false
	}
}

// placeEnemy puts enemy i on a lane. A huge delay keeps it from moving.
func placeEnemy(w *World, i, row int, x float64, class ColorClass) *Enemy {
	e := w.enemies.At(i)
	e.Row = row
	e.Y = w.board.RowToY(row, 0)
	e.X = x
	e.Class = class
	e.Sprite = EnemySprite(class)
	e.Delay = 1 << 30
	e.Zombie = false
	e.ZombieCounter = w.cfg.Enemies.ZombieLifetime
	return e
}

// startGame starts a round and clears the lanes.
func startGame(w *World) {
	step(w, core.ActionSelect)
	parkEnemies(w)
}
