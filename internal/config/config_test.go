package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseJumper(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParseJumper(embedded) failed: %v", err)
	}
	if cfg != DefaultJumperConfig() {
		t.Errorf("embedded YAML differs from DefaultJumperConfig:\n%+v\n%+v", cfg, DefaultJumperConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultJumperConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseJumper([]byte("goal:\n  target_coins: 3\nvariant: tilt\n"))
	if err != nil {
		t.Fatalf("ParseJumper failed: %v", err)
	}
	if cfg.Goal.TargetCoins != 3 {
		t.Errorf("TargetCoins = %d, expected 3", cfg.Goal.TargetCoins)
	}
	if cfg.Variant != VariantTilt {
		t.Errorf("Variant = %q, expected tilt", cfg.Variant)
	}
	if cfg.Physics.JumpVelocity != 550 {
		t.Errorf("JumpVelocity = %f, expected default 550", cfg.Physics.JumpVelocity)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JumperConfig)
		want   string
	}{
		{"unknown variant", func(c *JumperConfig) { c.Variant = "mouse" }, "variant"},
		{"upward gravity", func(c *JumperConfig) { c.Physics.Gravity = 10 }, "gravity"},
		{"zero step", func(c *JumperConfig) { c.Platforms.StepY = 0 }, "step_y"},
		{"platform too wide", func(c *JumperConfig) { c.Platforms.Width = 470 }, "fit"},
		{"bad probability", func(c *JumperConfig) { c.Coins.SpawnChance = 1.5 }, "spawn_chance"},
		{"decay above one", func(c *JumperConfig) { c.Steering.Gyro.Decay = 1.2 }, "decay"},
		{"decay of one never leaks", func(c *JumperConfig) { c.Steering.Gyro.Decay = 1 }, "decay"},
		{"zero decay", func(c *JumperConfig) { c.Steering.Gyro.Decay = 0 }, "decay"},
		{"no target", func(c *JumperConfig) { c.Goal.TargetCoins = 0 }, "target_coins"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultJumperConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoadJumperCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jumper.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 600\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadJumper(path)
	if err != nil {
		t.Fatalf("LoadJumper() failed: %v", err)
	}
	if cfg.World.Width != 600 {
		t.Errorf("World.Width = %f, expected 600", cfg.World.Width)
	}
}

func TestLoadJumperCustomPathErrors(t *testing.T) {
	if _, err := LoadJumper(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadJumper() on missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadJumper(path); err == nil {
		t.Error("LoadJumper() on malformed YAML should fail")
	}
}

func TestApplyJumperPreset(t *testing.T) {
	easy := DefaultJumperConfig()
	ApplyJumperPreset(&easy, DifficultyEasy)
	if easy.Goal.TargetCoins != 10 || easy.Platforms.Width != 140 {
		t.Errorf("easy preset = %+v", easy.Goal)
	}

	hard := DefaultJumperConfig()
	ApplyJumperPreset(&hard, DifficultyHard)
	if hard.Goal.TargetCoins != 25 || hard.Coins.SpawnChance != 0.30 {
		t.Errorf("hard preset = %+v %+v", hard.Goal, hard.Coins)
	}

	fixed := DefaultJumperConfig()
	ApplyJumperPreset(&fixed, DifficultyFixed)
	if fixed != DefaultJumperConfig() {
		t.Error("fixed preset should not change the config")
	}

	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyHard} {
		cfg := DefaultJumperConfig()
		ApplyJumperPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produces invalid config: %v", p, err)
		}
	}
}

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tt := range tests {
		got, err := LookupPreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("LookupPreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("LookupPreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error(`ParsePreset("hard") should be DifficultyHard`)
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}
