package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset name is known.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset adjusts a balance for a difficulty preset. Normal leaves the
// loaded balance untouched; easy and hard shift the light budget and the
// danger-mode pacing in lockstep so floor scaling curves stay monotonic.
func ApplyPreset(cfg *Balance, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Light.StartLight += cfg.Light.StartLight / 4
		cfg.Hunter.PursuitThreshold += 4
		cfg.Hunter.MinThreshold += 2
		cfg.Collapse.PeriodTicks += 10
		cfg.Collapse.MinPeriod += 4
	case DifficultyHard:
		cfg.Light.StartLight -= cfg.Light.StartLight / 4
		cfg.Hunter.PursuitThreshold -= 4
		if cfg.Hunter.PursuitThreshold < cfg.Hunter.MinThreshold {
			cfg.Hunter.PursuitThreshold = cfg.Hunter.MinThreshold
		}
		cfg.Collapse.PeriodTicks -= 10
		if cfg.Collapse.PeriodTicks < cfg.Collapse.MinPeriod {
			cfg.Collapse.PeriodTicks = cfg.Collapse.MinPeriod
		}
	}
}
