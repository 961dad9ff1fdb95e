package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ColorClasses is the number of enemy colour classes.
// Per-class tables (kill points, charm points) must have exactly this many entries.
const ColorClasses = 5

// Validate checks that the configuration describes a playable game.
// Board rows are checked by the game itself when it builds the board.
func (c CrossingConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Board.Columns >= 2, "board.columns must be at least 2"},
		{c.Board.TileWidth > 0, "board.tile_width must be positive"},
		{c.Board.TileHeight > 0, "board.tile_height must be positive"},
		{c.Board.TopPlayableRow >= 0, "board.top_playable_row must not be negative"},
		{c.Enemies.Count > 0, "enemies.count must be positive"},
		{c.Enemies.MinSpeed > 0, "enemies.min_speed must be positive"},
		{c.Enemies.MinSpeed <= c.Enemies.MaxSpeed, "enemies.min_speed must not exceed max_speed"},
		{c.Enemies.MinDelay >= 0, "enemies.min_delay must not be negative"},
		{c.Enemies.MinDelay <= c.Enemies.MaxDelay, "enemies.min_delay must not exceed max_delay"},
		{c.Enemies.VisibleWidth > 0, "enemies.visible_width must be positive"},
		{c.Enemies.BehindBias >= 0, "enemies.behind_bias must not be negative"},
		{c.Enemies.ZombieLifetime > 0, "enemies.zombie_lifetime must be positive"},
		{len(c.Enemies.SpeedBands) == ColorClasses-1, "enemies.speed_bands needs 4 entries"},
		{ascending(c.Enemies.SpeedBands), "enemies.speed_bands must be ascending"},
		{len(c.Enemies.KillPoints) == ColorClasses, "enemies.kill_points needs 5 entries"},
		{c.Player.VisibleWidth > 0, "player.visible_width must be positive"},
		{c.Player.Lives > 0, "player.lives must be positive"},
		{c.Player.PointsPerSecond >= 0, "player.points_per_second must not be negative"},
		{c.Charms.Slots > 0, "charms.slots must be positive"},
		{c.Charms.MinDelay >= 0, "charms.min_delay must not be negative"},
		{c.Charms.MinDelay <= c.Charms.MaxDelay, "charms.min_delay must not exceed max_delay"},
		{c.Charms.Lifetime > 0, "charms.lifetime must be positive"},
		{c.Charms.CenterTolerance > 0 && c.Charms.CenterTolerance < 0.5, "charms.center_tolerance must be in (0, 0.5)"},
		{c.Charms.VisibleWidth > 0, "charms.visible_width must be positive"},
		{len(c.Charms.Points) == ColorClasses, "charms.points needs 5 entries"},
		{c.Game.Duration > 0, "game.duration must be positive"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.msg)
		}
	}
	return nil
}

func ascending(v []int) bool {
	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			return false
		}
	}
	return true
}
