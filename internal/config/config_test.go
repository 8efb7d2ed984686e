package config

import "testing"

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and DefaultBalance are maintained in parallel;
	// loading with no overrides must resolve to the same values.
	cfg, err := LoadBalance("")
	if err != nil {
		t.Fatalf("LoadBalance: %v", err)
	}
	want := DefaultBalance()
	if cfg.Light != want.Light {
		t.Errorf("light section = %+v, want %+v", cfg.Light, want.Light)
	}
	if cfg.Floor != want.Floor {
		t.Errorf("floor section = %+v, want %+v", cfg.Floor, want.Floor)
	}
	if cfg.Hunter != want.Hunter {
		t.Errorf("hunter section = %+v, want %+v", cfg.Hunter, want.Hunter)
	}
	if cfg.Collapse != want.Collapse {
		t.Errorf("collapse section = %+v, want %+v", cfg.Collapse, want.Collapse)
	}
}

func TestLoadBalanceMissingCustomPath(t *testing.T) {
	if _, err := LoadBalance("/nonexistent/balance.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestSizeForFloorMonotonicAndCapped(t *testing.T) {
	cfg := DefaultBalance().Floor
	prevW, prevH := 0, 0
	for floor := 0; floor < 100; floor++ {
		w, h := cfg.SizeForFloor(floor)
		if w < prevW || h < prevH {
			t.Fatalf("floor %d shrank: %dx%d after %dx%d", floor, w, h, prevW, prevH)
		}
		if w > cfg.MaxWidth || h > cfg.MaxHeight {
			t.Fatalf("floor %d exceeds cap: %dx%d", floor, w, h)
		}
		prevW, prevH = w, h
	}
	if w, h := cfg.SizeForFloor(0); w != cfg.BaseWidth || h != cfg.BaseHeight {
		t.Errorf("floor 0 = %dx%d, want base %dx%d", w, h, cfg.BaseWidth, cfg.BaseHeight)
	}
}

func TestHunterThresholdTightens(t *testing.T) {
	cfg := DefaultBalance().Hunter
	prev := cfg.ThresholdForFloor(0)
	for floor := 1; floor < 50; floor++ {
		cur := cfg.ThresholdForFloor(floor)
		if cur > prev {
			t.Fatalf("threshold loosened at floor %d: %d > %d", floor, cur, prev)
		}
		if cur < cfg.MinThreshold {
			t.Fatalf("threshold below floor %d minimum: %d", floor, cur)
		}
		prev = cur
	}
}

func TestCollapsePeriodTightens(t *testing.T) {
	cfg := DefaultBalance().Collapse
	prev := cfg.PeriodForFloor(0)
	for floor := 1; floor < 50; floor++ {
		cur := cfg.PeriodForFloor(floor)
		if cur > prev {
			t.Fatalf("period loosened at floor %d: %d > %d", floor, cur, prev)
		}
		if cur < cfg.MinPeriod {
			t.Fatalf("period below minimum at floor %d: %d", floor, cur)
		}
		prev = cur
	}
}

func TestApplyPresetHardStaysPlayable(t *testing.T) {
	cfg := DefaultBalance()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Hunter.PursuitThreshold < cfg.Hunter.MinThreshold {
		t.Errorf("hard preset pushed threshold below minimum: %d < %d",
			cfg.Hunter.PursuitThreshold, cfg.Hunter.MinThreshold)
	}
	if cfg.Collapse.PeriodTicks < cfg.Collapse.MinPeriod {
		t.Errorf("hard preset pushed period below minimum: %d < %d",
			cfg.Collapse.PeriodTicks, cfg.Collapse.MinPeriod)
	}
	if cfg.Light.StartLight <= 0 {
		t.Errorf("hard preset zeroed start light: %d", cfg.Light.StartLight)
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if !ValidPreset(p) {
			t.Errorf("preset %q reported invalid", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("unknown preset reported valid")
	}
}
