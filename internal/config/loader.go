package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadJumper loads the jumper configuration.
// Search order: customPath -> ~/.arcade/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
//
// Files are decoded on top of the defaults, so partial files only override
// the fields they mention. A custom path that cannot be read, parsed or
// validated is an error; the other locations are skipped silently.
func LoadJumper(customPath string) (JumperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseJumper(data)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("jumper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseJumper(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "jumper.yaml")); err == nil {
		if cfg, err := ParseJumper(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseJumper(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseJumper decodes YAML on top of DefaultJumperConfig and validates the result.
func ParseJumper(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumperConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return JumperConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable world.
func (c JumperConfig) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Variant == VariantGyro || c.Variant == VariantTilt,
		fmt.Sprintf("variant must be %q or %q, got %q", VariantGyro, VariantTilt, c.Variant))
	check(c.World.Width > 0, "world.width must be positive")
	check(c.World.Height > 0, "world.height must be positive")
	check(c.Goal.TargetCoins > 0, "goal.target_coins must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Physics.Gravity < 0, "physics.gravity must be negative")
	check(c.Physics.JumpVelocity > 0, "physics.jump_velocity must be positive")
	check(c.Physics.MaxHorizontalSpeed >= 0, "physics.max_horizontal_speed must not be negative")
	check(c.Physics.MaxFrameTime > 0, "physics.max_frame_time must be positive")
	check(c.Steering.Gyro.WindUp >= 1, "steering.gyro.wind_up must be at least 1")
	check(c.Steering.Gyro.Decay > 0 && c.Steering.Gyro.Decay < 1, "steering.gyro.decay must be in (0, 1)")
	check(c.Steering.Tilt.Alpha > 0 && c.Steering.Tilt.Alpha <= 1, "steering.tilt.alpha must be in (0, 1]")
	check(c.Steering.Tilt.DeadZone >= 0, "steering.tilt.dead_zone must not be negative")
	check(c.Steering.Tilt.Gravity > 0, "steering.tilt.gravity must be positive")
	check(c.Platforms.Width > 0 && c.Platforms.Height > 0, "platform size must be positive")
	check(c.Platforms.StepY > 0, "platforms.step_y must be positive")
	check(c.Platforms.Margin >= 0, "platforms.margin must not be negative")
	check(c.Platforms.Width+2*c.Platforms.Margin <= c.World.Width,
		"platforms.width plus both margins must fit in world.width")
	check(c.Platforms.GroundHeight > 0, "platforms.ground_height must be positive")
	check(c.Platforms.FirstY > c.Platforms.GroundY, "platforms.first_y must be above platforms.ground_y")
	check(c.Coins.SpawnChance >= 0 && c.Coins.SpawnChance <= 1, "coins.spawn_chance must be in [0, 1]")
	check(c.Coins.Radius > 0, "coins.radius must be positive")
	check(c.Camera.AheadScreens >= 0, "camera.ahead_screens must not be negative")
	check(c.Camera.CleanupScreens >= 0, "camera.cleanup_screens must not be negative")

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the configured values.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Goal.TargetCoins = 10
		cfg.Coins.SpawnChance = 0.55
		cfg.Platforms.Width = 140
	case DifficultyHard:
		cfg.Goal.TargetCoins = 25
		cfg.Coins.SpawnChance = 0.30
		cfg.Platforms.Width = 100
	}
}
