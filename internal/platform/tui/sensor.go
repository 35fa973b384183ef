package tui

import (
	"math"

	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/core"
)

// Virtual sensor tuning. Terminals report key repeats rather than key
// holds, so each press produces a short pulse that repeats keep alive.
const (
	gyroPulseRate   = 2.5  // rad/s while a pulse is active
	gyroPulseTime   = 0.12 // seconds a single press stays active
	tiltStep        = 0.08 // radians added per press
	tiltMaxAngle    = 0.6  // radians
	tiltRelaxTime   = 0.35 // seconds for the angle to fall to 1/e
	standardGravity = 9.81
)

// VirtualSensor turns keyboard tilt presses into motion samples for the
// configured steering variant.
type VirtualSensor struct {
	variant config.Variant
	dir     int     // Last pressed direction
	pulse   float64 // Gyro pulse time remaining
	angle   float64 // Tilt angle in radians, positive = right
}

// NewVirtualSensor creates a sensor at rest.
func NewVirtualSensor(variant config.Variant) *VirtualSensor {
	return &VirtualSensor{variant: variant}
}

// Press registers a tilt toward dir (TiltLeft or TiltRight).
func (s *VirtualSensor) Press(dir int) {
	if dir == TiltNone {
		return
	}
	switch s.variant {
	case config.VariantTilt:
		s.angle = core.ClampF(s.angle+float64(dir)*tiltStep, -tiltMaxAngle, tiltMaxAngle)
	default:
		s.dir = dir
		s.pulse = gyroPulseTime
	}
}

// Advance moves the sensor forward by dt seconds and returns the sample
// to feed into this frame.
func (s *VirtualSensor) Advance(dt float64) core.MotionSample {
	sample := s.Sample()

	if s.pulse > 0 {
		s.pulse -= dt
		if s.pulse <= 0 {
			s.pulse = 0
			s.dir = TiltNone
		}
	}
	if dt > 0 {
		s.angle *= math.Exp(-dt / tiltRelaxTime)
	}
	return sample
}

// Sample returns the current reading without advancing time.
func (s *VirtualSensor) Sample() core.MotionSample {
	if s.variant == config.VariantTilt {
		// Tilting right pushes gravity toward -x on an upright device.
		return core.MotionSample{
			AccelX: -standardGravity * math.Sin(s.angle),
			AccelY: 0,
		}
	}
	if s.pulse <= 0 {
		return core.MotionSample{}
	}
	// Rolling right is a negative rate around the device's y axis.
	return core.MotionSample{AngularRate: -float64(s.dir) * gyroPulseRate}
}

// Reset puts the sensor back at rest.
func (s *VirtualSensor) Reset() {
	s.dir = TiltNone
	s.pulse = 0
	s.angle = 0
}
