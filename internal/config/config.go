// Package config provides YAML-based balance configuration for the
// Lightline engine. Every tunable the reducer, generator, and danger modes
// consume lives in a Balance value that is fixed for the lifetime of a run.
package config

// Balance contains all engine tunables.
type Balance struct {
	Light    LightConfig    `yaml:"light"`
	Floor    FloorConfig    `yaml:"floor"`
	Hunter   HunterConfig   `yaml:"hunter"`
	Collapse CollapseConfig `yaml:"collapse"`
}

// LightConfig defines the light economy parameters.
type LightConfig struct {
	BurnCost        int     `yaml:"burn_cost"`        // light per step onto an unlit tile
	QuietCost       int     `yaml:"quiet_cost"`       // light per quiet step
	ReclaimFraction float64 `yaml:"reclaim_fraction"` // share of a trail charge returned on re-entry
	StartLight      int     `yaml:"start_light"`
	MaxLight        int     `yaml:"max_light"`
}

// FloorConfig defines floor sizing, anchor density, and generation retries.
type FloorConfig struct {
	BaseWidth       int `yaml:"base_width"`
	BaseHeight      int `yaml:"base_height"`
	MaxWidth        int `yaml:"max_width"`
	MaxHeight       int `yaml:"max_height"`
	SizeGrowthEvery int `yaml:"size_growth_every"` // floors per growth step
	SizeGrowthDelta int `yaml:"size_growth_delta"` // tiles added per growth step
	RetryBudget     int `yaml:"retry_budget"`      // generation attempts before failing the floor
	Beacons         int `yaml:"beacons"`
	Relics          int `yaml:"relics"`
	Switches        int `yaml:"switches"`
}

// HunterConfig defines the Sound Hunter danger mode.
type HunterConfig struct {
	NoisePerStep     int `yaml:"noise_per_step"`
	NoiseQuietStep   int `yaml:"noise_quiet_step"`
	NoiseDecay       int `yaml:"noise_decay"`       // pressure lost per tick
	PursuitThreshold int `yaml:"pursuit_threshold"` // pressure at which the hunter pursues
	SenseRadius      int `yaml:"sense_radius"`      // Manhattan radius where the hunter is sensed
	BeaconSenseBonus int `yaml:"beacon_sense_bonus"`
	BeaconRadius     int `yaml:"beacon_radius"` // player distance to a beacon for the bonus
	StepInterval     int `yaml:"step_interval"` // ticks between hunter steps while pursuing
	Tightening       int `yaml:"tightening"`    // threshold reduction per floor
	MinThreshold     int `yaml:"min_threshold"`
}

// CollapseConfig defines the Imminent Collapse danger mode.
type CollapseConfig struct {
	PeriodTicks  int `yaml:"period_ticks"`  // ticks between impacts
	WarningTicks int `yaml:"warning_ticks"` // telegraph window before an impact
	CutBudget    int `yaml:"cut_budget"`    // tiles cut per impact
	Tightening   int `yaml:"tightening"`    // period reduction per floor
	MinPeriod    int `yaml:"min_period"`
}

// ThresholdForFloor returns the pursuit threshold on a floor. The curve is
// monotonic in the floor index and bottoms out at MinThreshold.
func (c HunterConfig) ThresholdForFloor(floor int) int {
	threshold := c.PursuitThreshold - floor*c.Tightening
	if threshold < c.MinThreshold {
		return c.MinThreshold
	}
	return threshold
}

// PeriodForFloor returns the collapse period on a floor, tightening with
// depth down to MinPeriod.
func (c CollapseConfig) PeriodForFloor(floor int) int {
	period := c.PeriodTicks - floor*c.Tightening
	if period < c.MinPeriod {
		return c.MinPeriod
	}
	return period
}

// SizeForFloor returns the floor dimensions for a floor index. Growth is
// monotonic and capped at MaxWidth x MaxHeight, and the same index always
// maps to the same size.
func (c FloorConfig) SizeForFloor(floor int) (width, height int) {
	every := c.SizeGrowthEvery
	if every <= 0 {
		every = 1
	}
	growth := (floor / every) * c.SizeGrowthDelta
	width = c.BaseWidth + growth
	height = c.BaseHeight + growth
	if width > c.MaxWidth {
		width = c.MaxWidth
	}
	if height > c.MaxHeight {
		height = c.MaxHeight
	}
	return width, height
}
