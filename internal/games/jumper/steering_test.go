package jumper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/core"
)

const frameDT = 1.0 / 60.0

func gyroCfg() config.GyroConfig {
	return config.DefaultJumperConfig().Steering.Gyro
}

func tiltCfg() config.TiltConfig {
	return config.DefaultJumperConfig().Steering.Tilt
}

func TestSteeringOutputBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	filters := map[string]Steering{
		"gyro": NewGyroSteering(gyroCfg()),
		"tilt": NewTiltSteering(tiltCfg()),
	}

	for name, f := range filters {
		for i := 0; i < 5000; i++ {
			s := core.MotionSample{
				AngularRate: (rng.Float64() - 0.5) * 200,
				AccelX:      (rng.Float64() - 0.5) * 100,
				AccelY:      (rng.Float64() - 0.5) * 100,
				Rotation:    90 * rng.Intn(4),
			}
			if i%97 == 0 {
				s.AngularRate = math.NaN()
				s.AccelX = math.Inf(-1)
			}
			out := f.Update(s, rng.Float64()*0.1)
			if out < -1 || out > 1 || math.IsNaN(out) {
				t.Fatalf("%s: frame %d output %f outside [-1, 1]", name, i, out)
			}
		}
	}
}

func TestGyroDirection(t *testing.T) {
	g := NewGyroSteering(gyroCfg())

	// Clockwise rotation (negative rate) steers right
	if out := g.Update(core.MotionSample{AngularRate: -1}, frameDT); out <= 0 {
		t.Errorf("negative rate should steer right, got %f", out)
	}

	g.Reset()
	if out := g.Update(core.MotionSample{AngularRate: 1}, frameDT); out >= 0 {
		t.Errorf("positive rate should steer left, got %f", out)
	}
}

func TestGyroIntegrateAndDecay(t *testing.T) {
	g := NewGyroSteering(gyroCfg())

	g.Integrate(-1, 0.1)
	want := 0.1 * 8.5
	if math.Abs(g.Accumulator()-want) > 1e-12 {
		t.Errorf("Accumulator() = %f, expected %f", g.Accumulator(), want)
	}

	g.Decay()
	if math.Abs(g.Accumulator()-want*0.99) > 1e-12 {
		t.Errorf("after Decay, Accumulator() = %f, expected %f", g.Accumulator(), want*0.99)
	}
}

func TestGyroDecaysWithoutInput(t *testing.T) {
	g := NewGyroSteering(gyroCfg())

	// A short flick that stays below saturation
	g.Update(core.MotionSample{AngularRate: -2}, frameDT)
	prev := math.Abs(g.Value())
	if prev == 0 || prev >= 1 {
		t.Fatalf("setup: expected unsaturated nonzero steering, got %f", prev)
	}

	for i := 0; i < 500; i++ {
		out := math.Abs(g.Update(core.MotionSample{}, frameDT))
		if out >= prev {
			t.Fatalf("frame %d: |steering| %f did not decrease from %f", i, out, prev)
		}
		prev = out
	}
	if prev > 0.01 {
		t.Errorf("steering should approach 0, still %f after 500 frames", prev)
	}
}

func TestGyroWindUp(t *testing.T) {
	g := NewGyroSteering(gyroCfg())

	for i := 0; i < 100; i++ {
		g.Update(core.MotionSample{AngularRate: -50}, frameDT)
	}
	if g.Value() != 1 {
		t.Errorf("saturated steering = %f, expected 1", g.Value())
	}
	// Clamp happens before decay
	if math.Abs(g.Accumulator()-3*0.99) > 1e-9 {
		t.Errorf("Accumulator() = %f, expected %f", g.Accumulator(), 3*0.99)
	}

	// Wound-up accumulator holds the output at 1 for a while after input stops
	g.Update(core.MotionSample{}, frameDT)
	if g.Value() != 1 {
		t.Errorf("steering should stay saturated right after release, got %f", g.Value())
	}
}

func TestGyroZeroDT(t *testing.T) {
	g := NewGyroSteering(gyroCfg())
	g.Update(core.MotionSample{AngularRate: 1000}, 0)
	if g.Accumulator() != 0 {
		t.Errorf("zero dt should not integrate, got %f", g.Accumulator())
	}
	g.Integrate(1000, -1)
	if g.Accumulator() != 0 {
		t.Errorf("negative dt should be treated as zero, got %f", g.Accumulator())
	}
}

func TestGyroZeroDTStillDecays(t *testing.T) {
	g := NewGyroSteering(gyroCfg())
	g.Integrate(-5, 0.0165) // acc = 0.70125
	before := g.Value()

	after := g.Update(core.MotionSample{AngularRate: 1000}, 0)

	want := before * gyroCfg().Decay
	if math.Abs(after-want) > 1e-12 {
		t.Errorf("Update(dt=0) = %f, expected one decay step to %f", after, want)
	}
}

func TestGyroReset(t *testing.T) {
	g := NewGyroSteering(gyroCfg())
	g.Update(core.MotionSample{AngularRate: -5}, frameDT)
	g.Reset()
	if g.Value() != 0 || g.Accumulator() != 0 {
		t.Errorf("Reset should zero the accumulator, got %f", g.Accumulator())
	}
}

func TestScreenAxes(t *testing.T) {
	s := core.MotionSample{AccelX: 1, AccelY: 2}
	tests := []struct {
		rotation int
		tx, ty   float64
	}{
		{0, -1, 2},
		{90, 2, 1},
		{180, 1, -2},
		{270, -2, -1},
		{45, -1, 2}, // unknown rotations use the natural portrait mapping
	}

	for _, tc := range tests {
		s.Rotation = tc.rotation
		tx, ty := screenAxes(s)
		if tx != tc.tx || ty != tc.ty {
			t.Errorf("screenAxes(rot=%d) = (%f, %f), expected (%f, %f)", tc.rotation, tx, ty, tc.tx, tc.ty)
		}
	}
}

func TestTiltLowPass(t *testing.T) {
	f := NewTiltSteering(tiltCfg())

	// Half a g to the right in portrait
	right := core.MotionSample{AccelX: -0.5 * 9.81}
	out := f.Update(right, frameDT)
	if math.Abs(out-0.18*0.5) > 1e-9 {
		t.Errorf("first filtered value = %f, expected %f", out, 0.18*0.5)
	}

	for i := 0; i < 200; i++ {
		out = f.Update(right, frameDT)
	}
	if math.Abs(out-0.5) > 1e-3 {
		t.Errorf("filter should converge to 0.5, got %f", out)
	}

	// Back to level: output decays toward 0
	prev := out
	for i := 0; i < 50; i++ {
		out = f.Update(core.MotionSample{}, frameDT)
		if out >= prev {
			t.Fatalf("frame %d: %f did not decrease from %f", i, out, prev)
		}
		prev = out
	}
}

func TestTiltDeadZone(t *testing.T) {
	f := NewTiltSteering(tiltCfg())
	small := core.MotionSample{AccelX: -0.04 * 9.81}

	for i := 0; i < 20; i++ {
		if out := f.Update(small, frameDT); out != 0 {
			t.Fatalf("tilt inside dead zone should not steer, got %f", out)
		}
	}
}

func TestTiltCalibrate(t *testing.T) {
	f := NewTiltSteering(tiltCfg())
	held := core.MotionSample{AccelX: -3, AccelY: 4}

	f.Update(held, frameDT)
	if f.Value() == 0 {
		t.Fatal("setup: uncalibrated tilt should steer")
	}

	f.Calibrate(held)
	if f.Value() != 0 {
		t.Errorf("Calibrate should clear the filter, got %f", f.Value())
	}
	for i := 0; i < 10; i++ {
		if out := f.Update(held, frameDT); out != 0 {
			t.Fatalf("calibrated pose should read as level, got %f", out)
		}
	}

	f.Reset()
	if out := f.Update(held, frameDT); out == 0 {
		t.Error("Reset should drop the calibration offset")
	}
}

func TestNewSteeringVariant(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	if _, ok := NewSteering(&cfg).(*GyroSteering); !ok {
		t.Error("default variant should build GyroSteering")
	}
	cfg.Variant = config.VariantTilt
	if _, ok := NewSteering(&cfg).(*TiltSteering); !ok {
		t.Error("tilt variant should build TiltSteering")
	}
}
