// Package config provides YAML-based game configuration loading,
// difficulty presets and validation for the crossing game.
package config

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Board   BoardConfig    `yaml:"board"`
	Enemies EnemyConfig    `yaml:"enemies"`
	Player  PlayerConfig   `yaml:"player"`
	Charms  CharmConfig    `yaml:"charms"`
	Game    GameplayConfig `yaml:"game"`
}

// BoardConfig defines the tile grid. Sizes are in logical pixels.
type BoardConfig struct {
	Rows           int `yaml:"rows"`
	Columns        int `yaml:"columns"`
	TileWidth      int `yaml:"tile_width"`
	TileHeight     int `yaml:"tile_height"`
	TopPlayableRow int `yaml:"top_playable_row"`
}

// EnemyConfig defines the enemy pool.
type EnemyConfig struct {
	Count          int     `yaml:"count"`
	MinSpeed       int     `yaml:"min_speed"`       // pixels per second
	MaxSpeed       int     `yaml:"max_speed"`       // pixels per second
	MinDelay       int     `yaml:"min_delay"`       // ticks spent off-board before entering
	MaxDelay       int     `yaml:"max_delay"`       // ticks
	VisibleWidth   float64 `yaml:"visible_width"`   // hitbox width
	BehindBias     float64 `yaml:"behind_bias"`     // widens the left edge of the hitbox
	ZombieLifetime int     `yaml:"zombie_lifetime"` // ticks
	SpeedBands     []int   `yaml:"speed_bands"`     // upper bounds of the first four colour classes
	KillPoints     []int   `yaml:"kill_points"`     // one per colour class
}

// PlayerConfig defines the player.
type PlayerConfig struct {
	VisibleWidth    float64 `yaml:"visible_width"`
	Lives           int     `yaml:"lives"`
	PointsPerSecond int     `yaml:"points_per_second"`
}

// CharmConfig defines the charm pool and drop timing.
type CharmConfig struct {
	Slots           int     `yaml:"slots"`
	MinDelay        int     `yaml:"min_delay"`        // game seconds
	MaxDelay        int     `yaml:"max_delay"`        // game seconds
	Lifetime        int     `yaml:"lifetime"`         // ticks
	DropOffset      int     `yaml:"drop_offset"`      // pixels below the enemy
	CenterTolerance float64 `yaml:"center_tolerance"` // fraction of tile width
	VisibleWidth    float64 `yaml:"visible_width"`    // hitbox width
	Points          []int   `yaml:"points"`           // one per colour class
}

// GameplayConfig defines round-level rules.
type GameplayConfig struct {
	Duration int `yaml:"duration"` // seconds per game
}

// DifficultyPreset represents a named difficulty level.
// Presets only change the enemy speed range.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
// Unknown names return an empty preset, which leaves the config untouched.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// SpeedRangeForPreset returns the enemy speed range for a difficulty preset.
func SpeedRangeForPreset(preset DifficultyPreset) (int, int, bool) {
	switch preset {
	case DifficultyEasy:
		return 60, 200, true
	case DifficultyNormal:
		return 75, 300, true
	case DifficultyHard:
		return 120, 400, true
	default:
		return 0, 0, false
	}
}
