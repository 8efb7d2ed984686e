package config

import (
	_ "embed"
)

//go:embed defaults/balance.yaml
var defaultBalanceYAML []byte

// DefaultBalance returns the hardcoded default balance, used as the final
// fallback if the embedded YAML fails to parse.
func DefaultBalance() Balance {
	return Balance{
		Light: LightConfig{
			BurnCost:        1,
			QuietCost:       2,
			ReclaimFraction: 1.0,
			StartLight:      120,
			MaxLight:        200,
		},
		Floor: FloorConfig{
			BaseWidth:       36,
			BaseHeight:      24,
			MaxWidth:        64,
			MaxHeight:       40,
			SizeGrowthEvery: 2,
			SizeGrowthDelta: 2,
			RetryBudget:     8,
			Beacons:         1,
			Relics:          2,
			Switches:        1,
		},
		Hunter: HunterConfig{
			NoisePerStep:     3,
			NoiseQuietStep:   1,
			NoiseDecay:       1,
			PursuitThreshold: 12,
			SenseRadius:      8,
			BeaconSenseBonus: 4,
			BeaconRadius:     3,
			StepInterval:     2,
			Tightening:       1,
			MinThreshold:     4,
		},
		Collapse: CollapseConfig{
			PeriodTicks:  40,
			WarningTicks: 10,
			CutBudget:    4,
			Tightening:   2,
			MinPeriod:    16,
		},
	}
}

// GetDefaultYAML returns the embedded default balance YAML.
func GetDefaultYAML() []byte {
	return defaultBalanceYAML
}
