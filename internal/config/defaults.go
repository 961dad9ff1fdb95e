package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: BoardConfig{
			Rows:           6,
			Columns:        5,
			TileWidth:      101,
			TileHeight:     83,
			TopPlayableRow: 1,
		},
		Enemies: EnemyConfig{
			Count:          5,
			MinSpeed:       75,
			MaxSpeed:       300,
			MinDelay:       1,
			MaxDelay:       100,
			VisibleWidth:   101,
			BehindBias:     0,
			ZombieLifetime: 120, // 2 seconds at 60fps
			SpeedBands:     []int{120, 165, 210, 255},
			KillPoints:     []int{20, 40, 60, 80, 100},
		},
		Player: PlayerConfig{
			VisibleWidth:    60,
			Lives:           4,
			PointsPerSecond: 5,
		},
		Charms: CharmConfig{
			Slots:           3,
			MinDelay:        2,
			MaxDelay:        4,
			Lifetime:        300, // 5 seconds at 60fps
			DropOffset:      30,
			CenterTolerance: 0.05,
			VisibleWidth:    60,
			Points:          []int{25, 50, 75, 100, 150},
		},
		Game: GameplayConfig{
			Duration: 120,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing", "crossing_classic":
		return defaultCrossingYAML
	default:
		return nil
	}
}
