package jumper

import (
	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/core"
)

// Steering turns raw motion samples into a horizontal control value.
// Implementations guarantee the returned value is always in [-1, 1],
// that it relaxes toward 0 when the device stops moving, and that their
// internal state stays bounded.
type Steering interface {
	// Update consumes one sample and returns the steering for this frame.
	Update(sample core.MotionSample, dt float64) float64
	// Calibrate takes the given sample as the neutral pose.
	Calibrate(sample core.MotionSample)
	// Reset clears the filter state.
	Reset()
	// Value returns the most recent steering without consuming input.
	Value() float64
}

// NewSteering builds the steering filter selected by cfg.Variant.
func NewSteering(cfg *config.JumperConfig) Steering {
	if cfg.Variant == config.VariantTilt {
		return NewTiltSteering(cfg.Steering.Tilt)
	}
	return NewGyroSteering(cfg.Steering.Gyro)
}

// GyroSteering is a leaky integrator over the angular rate.
// The accumulator may wind up past ±1 (up to WindUp) which gives the
// output a saturation plateau before it starts to fall back.
type GyroSteering struct {
	cfg config.GyroConfig
	acc float64 // virtual tilt
}

// NewGyroSteering creates an integrator with the given gain and decay.
func NewGyroSteering(cfg config.GyroConfig) *GyroSteering {
	return &GyroSteering{cfg: cfg}
}

// Integrate adds one rate sample to the accumulator and saturates it.
// Turning the device clockwise (negative rate) steers right.
func (g *GyroSteering) Integrate(rate, dt float64) {
	if dt < 0 {
		dt = 0
	}
	g.acc += -core.Finite(rate) * dt * g.cfg.Sensitivity
	g.acc = core.ClampF(g.acc, -g.cfg.WindUp, g.cfg.WindUp)
}

// Decay pulls the accumulator toward neutral by one frame's worth.
func (g *GyroSteering) Decay() {
	g.acc *= g.cfg.Decay
}

// Update integrates, decays, and returns the clamped output.
// Decay is applied once per call, so a zero dt frame still pulls the
// output toward neutral while adding no rotation.
func (g *GyroSteering) Update(sample core.MotionSample, dt float64) float64 {
	g.Integrate(sample.AngularRate, dt)
	g.Decay()
	return g.Value()
}

// Calibrate is a no-op: the integrator only sees rates, which have no offset to capture.
func (g *GyroSteering) Calibrate(core.MotionSample) {}

// Reset zeroes the accumulator.
func (g *GyroSteering) Reset() {
	g.acc = 0
}

// Value returns the accumulator clamped to [-1, 1].
func (g *GyroSteering) Value() float64 {
	return core.ClampF(g.acc, -1, 1)
}

// Accumulator returns the unclamped virtual tilt.
func (g *GyroSteering) Accumulator() float64 {
	return g.acc
}

// TiltSteering reads the device tilt from the accelerometer.
// Samples are remapped for the display rotation, offset by the calibrated
// zero, expressed in g, passed through a dead zone and a single-pole
// low-pass filter.
type TiltSteering struct {
	cfg          config.TiltConfig
	zeroX, zeroY float64
	filtX, filtY float64
}

// NewTiltSteering creates an accelerometer filter with a zero offset.
func NewTiltSteering(cfg config.TiltConfig) *TiltSteering {
	return &TiltSteering{cfg: cfg}
}

// screenAxes maps raw accelerometer axes to screen axes so that tilting
// right yields positive x and tilting away yields positive y.
func screenAxes(s core.MotionSample) (float64, float64) {
	ax, ay := s.AccelX, s.AccelY
	switch s.Rotation {
	case 90:
		return ay, ax
	case 180:
		return ax, -ay
	case 270:
		return -ay, -ax
	default:
		return -ax, ay
	}
}

// Update filters one sample and returns the horizontal component.
func (t *TiltSteering) Update(sample core.MotionSample, _ float64) float64 {
	tx, ty := screenAxes(sample.Sanitized())

	tx = (tx - t.zeroX) / t.cfg.Gravity
	ty = (ty - t.zeroY) / t.cfg.Gravity

	if abs(tx) < t.cfg.DeadZone {
		tx = 0
	}
	if abs(ty) < t.cfg.DeadZone {
		ty = 0
	}

	t.filtX += t.cfg.Alpha * (tx - t.filtX)
	t.filtY += t.cfg.Alpha * (ty - t.filtY)

	return t.Value()
}

// Calibrate stores the current pose as zero and restarts the filter so
// stale readings do not drag the output.
func (t *TiltSteering) Calibrate(sample core.MotionSample) {
	t.zeroX, t.zeroY = screenAxes(sample.Sanitized())
	t.filtX = 0
	t.filtY = 0
}

// Reset clears both the filter and the calibration offset.
func (t *TiltSteering) Reset() {
	t.zeroX, t.zeroY = 0, 0
	t.filtX, t.filtY = 0, 0
}

// Value returns the filtered horizontal tilt clamped to [-1, 1].
func (t *TiltSteering) Value() float64 {
	return core.ClampF(t.filtX, -1, 1)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
