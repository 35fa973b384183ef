// Package config provides YAML-based configuration loading and difficulty
// presets for the jumper.
package config

import "fmt"

// Variant selects how motion samples are turned into steering.
type Variant string

const (
	VariantGyro Variant = "gyro" // Integrate angular rate with decay
	VariantTilt Variant = "tilt" // Low-pass filtered accelerometer tilt
)

// JumperConfig contains every tunable constant of the simulation.
// It is treated as immutable once handed to a game.
type JumperConfig struct {
	Variant   Variant         `yaml:"variant"`
	World     WorldConfig     `yaml:"world"`
	Goal      GoalConfig      `yaml:"goal"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Steering  SteeringConfig  `yaml:"steering"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Coins     CoinsConfig     `yaml:"coins"`
	Camera    CameraConfig    `yaml:"camera"`
}

// WorldConfig defines the visible world size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GoalConfig defines the win condition.
type GoalConfig struct {
	TargetCoins int `yaml:"target_coins"`
}

// PlayerConfig defines the player body dimensions.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines gravity and movement limits.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`       // Vertical acceleration, negative = down
	JumpVelocity       float64 `yaml:"jump_velocity"` // Vertical speed after every landing
	MaxHorizontalSpeed float64 `yaml:"max_horizontal_speed"`
	MaxFrameTime       float64 `yaml:"max_frame_time"` // Upper clamp for a frame's dt, seconds
}

// SteeringConfig holds the parameters of both steering filters.
type SteeringConfig struct {
	Gyro GyroConfig `yaml:"gyro"`
	Tilt TiltConfig `yaml:"tilt"`
}

// GyroConfig tunes the angular-rate integrator.
type GyroConfig struct {
	Sensitivity float64 `yaml:"sensitivity"` // Gain applied to rate*dt
	WindUp      float64 `yaml:"wind_up"`     // Accumulator saturation, >= 1
	Decay       float64 `yaml:"decay"`       // Per-frame multiplier pulling toward neutral
}

// TiltConfig tunes the accelerometer low-pass filter.
type TiltConfig struct {
	Alpha    float64 `yaml:"alpha"`     // Low-pass coefficient, higher = less smoothing
	DeadZone float64 `yaml:"dead_zone"` // Ignored tilt magnitude, in g
	Gravity  float64 `yaml:"gravity"`   // Standard gravity used to normalize, m/s^2
}

// PlatformsConfig defines platform geometry and spacing.
type PlatformsConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StepY        float64 `yaml:"step_y"`
	Margin       float64 `yaml:"margin"`
	GroundY      float64 `yaml:"ground_y"`
	GroundHeight float64 `yaml:"ground_height"`
	FirstY       float64 `yaml:"first_y"`       // Height of the first generated platform
	FirstScreens float64 `yaml:"first_screens"` // Screens generated up front
}

// CoinsConfig defines coin spawning.
type CoinsConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Probability per platform, 0..1
	Radius      float64 `yaml:"radius"`
	OffsetY     float64 `yaml:"offset_y"` // Distance above the platform top
}

// CameraConfig defines the scrolling window around the camera.
type CameraConfig struct {
	AheadScreens   float64 `yaml:"ahead_screens"`   // Generated screens above the camera
	CleanupScreens float64 `yaml:"cleanup_screens"` // Kept screens below the camera
	LoseMargin     float64 `yaml:"lose_margin"`     // Extra distance below the view before losing
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// LookupPreset is ParsePreset for user input: an empty string is
// DifficultyNormal and unknown names are an error.
func LookupPreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := ParsePreset(s)
	if p == "" {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
