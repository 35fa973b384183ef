package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in jumper configuration.
// It matches defaults/jumper.yaml and is the fallback when no file parses.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Variant: VariantGyro,
		World: WorldConfig{
			Width:  480,
			Height: 800,
		},
		Goal: GoalConfig{
			TargetCoins: 15,
		},
		Player: PlayerConfig{
			Width:  36,
			Height: 36,
		},
		Physics: PhysicsConfig{
			Gravity:            -900,
			JumpVelocity:       550,
			MaxHorizontalSpeed: 220,
			MaxFrameTime:       0.05,
		},
		Steering: SteeringConfig{
			Gyro: GyroConfig{
				Sensitivity: 8.5,
				WindUp:      3.0,
				Decay:       0.99,
			},
			Tilt: TiltConfig{
				Alpha:    0.18,
				DeadZone: 0.05,
				Gravity:  9.81,
			},
		},
		Platforms: PlatformsConfig{
			Width:        120,
			Height:       18,
			StepY:        120,
			Margin:       20,
			GroundY:      80,
			GroundHeight: 20,
			FirstY:       140,
			FirstScreens: 2.0,
		},
		Coins: CoinsConfig{
			SpawnChance: 0.40,
			Radius:      10,
			OffsetY:     26,
		},
		Camera: CameraConfig{
			AheadScreens:   1.0,
			CleanupScreens: 2.0,
			LoseMargin:     150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultJumperYAML
}
