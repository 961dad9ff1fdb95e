package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int    // Committed score
	Lives         int    // Remaining lives
	RemainingTime int    // Seconds left on the countdown
	GameOver      bool   // Whether the game has ended
	Paused        bool   // Whether the game is paused
	Demo          bool   // Attract loop, no game in progress
	Reason        string // Why the game ended, empty while running
	Skin          string // Active player skin name
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Playing reports whether a game is in progress, paused or not.
func (s GameState) Playing() bool {
	return !s.Demo && !s.GameOver
}
