package crossing

import (
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

func TestBoardScenarioTriggersCollision(t *testing.T) {
	w, snd := newTestWorld(t, config.DefaultCrossingConfig(), nil)
	startGame(w)

	placeEnemy(w, 0, 2, 250, ClassRed)
	w.player.Row = 2
	w.player.X = 210

	step(w)

	if w.tracker.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", w.tracker.Lives())
	}
	if snd.count(SoundCollision) != 1 {
		t.Errorf("collision sound played %d times, expected 1", snd.count(SoundCollision))
	}
}

func TestMismatchedCollisionCostsOneLife(t *testing.T) {
	w, _ := newTestWorld(t, config.DefaultCrossingConfig(), nil)
	startGame(w)

	w.player.MoveUp()
	w.player.MoveUp()
	// Two deadly bugs on the player's tile: only one collision per tick.
	placeEnemy(w, 0, w.player.Row, w.player.X, ClassBlue)
	placeEnemy(w, 1, w.player.Row, w.player.X+10, ClassRed)

	step(w)

	if w.tracker.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", w.tracker.Lives())
	}
	if w.player.Row != 5 || w.player.Col != 2 {
		t.Errorf("player at row %d col %d, expected reset to 5/2", w.player.Row, w.player.Col)
	}
}

func TestMatchingCollisionZombifiesOnce(t *testing.T) {
	w, snd := newTestWorld(t, config.DefaultCrossingConfig(), nil)
	startGame(w)

	w.player.MoveUp()
	w.player.MoveUp()
	e := placeEnemy(w, 0, w.player.Row, w.player.X, ClassGreen) // skin 0 is green

	step(w)

	if !e.Zombie {
		t.Fatal("enemy should be a zombie")
	}
	if w.tracker.Lives() != 4 {
		t.Errorf("Lives() = %d, expected 4", w.tracker.Lives())
	}
	if w.tracker.Score() != 20 {
		t.Errorf("Score() = %d, expected 20", w.tracker.Score())
	}

	// Still overlapping: no further points or life changes.
	step(w)
	step(w)
	if w.tracker.Score() != 20 || w.tracker.Lives() != 4 {
		t.Errorf("after repeat overlap score=%d lives=%d, expected 20 and 4", w.tracker.Score(), w.tracker.Lives())
	}
	if snd.count(SoundZombie) != 1 {
		t.Errorf("zombie sound played %d times, expected 1", snd.count(SoundZombie))
	}
}

func TestClassicPolicyAlwaysDefeatsPlayer(t *testing.T) {
	w, _ := newTestWorld(t, config.DefaultCrossingConfig(), ClassicPolicy{})
	startGame(w)

	w.player.MoveUp()
	e := placeEnemy(w, 0, w.player.Row, w.player.X, ClassGreen)

	step(w)

	if e.Zombie {
		t.Error("classic policy must never zombify")
	}
	if w.tracker.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", w.tracker.Lives())
	}
}

func TestPolicyResolve(t *testing.T) {
	p := &Player{TypeIndex: 2}
	tests := []struct {
		policy   CollisionPolicy
		class    ColorClass
		expected Outcome
	}{
		{TypeMatchPolicy{}, ClassYellow, OutcomeEnemyDefeated},
		{TypeMatchPolicy{}, ClassRed, OutcomePlayerDefeated},
		{ClassicPolicy{}, ClassYellow, OutcomePlayerDefeated},
	}

	for _, tc := range tests {
		e := &Enemy{Class: tc.class}
		if got := tc.policy.Resolve(p, e); got != tc.expected {
			t.Errorf("%s.Resolve(%v) = %v, expected %v", tc.policy.Name(), tc.class, got, tc.expected)
		}
	}
}
