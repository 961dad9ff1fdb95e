package config

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// Only the enemy speed range changes; lanes, lives and the timer stay as configured.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	minSpeed, maxSpeed, ok := SpeedRangeForPreset(preset)
	if !ok {
		return
	}
	cfg.Enemies.MinSpeed = minSpeed
	cfg.Enemies.MaxSpeed = maxSpeed
}
