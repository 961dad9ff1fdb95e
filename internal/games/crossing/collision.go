package crossing

// Outcome is the result of a player touching a live enemy.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerDefeated
	OutcomeEnemyDefeated
)

// CollisionPolicy decides who wins when the player overlaps an enemy.
type CollisionPolicy interface {
	Name() string
	Resolve(p *Player, e *Enemy) Outcome
}

// TypeMatchPolicy lets a skin defeat enemies of its own colour class.
// Any other enemy defeats the player.
type TypeMatchPolicy struct{}

func (TypeMatchPolicy) Name() string { return "type-match" }

func (TypeMatchPolicy) Resolve(p *Player, e *Enemy) Outcome {
	if p.TypeIndex == int(e.Class) {
		return OutcomeEnemyDefeated
	}
	return OutcomePlayerDefeated
}

// ClassicPolicy makes every enemy deadly.
type ClassicPolicy struct{}

func (ClassicPolicy) Name() string { return "classic" }

func (ClassicPolicy) Resolve(*Player, *Enemy) Outcome {
	return OutcomePlayerDefeated
}
