package sim

import (
	"testing"

	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/games/jumper"
)

func TestParseSteer(t *testing.T) {
	tests := []struct {
		in      string
		want    Steer
		wantErr bool
	}{
		{"", SteerNone, false},
		{"none", SteerNone, false},
		{"SINE", SteerSine, false},
		{" left ", SteerLeft, false},
		{"right", SteerRight, false},
		{"up", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSteer(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSteer(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSteer(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestSteerSampleDirection(t *testing.T) {
	// Positive steering needs a negative rate (gyro) or negative x accel (tilt)
	if s := SteerRight.Sample(config.VariantGyro, 0); s.AngularRate >= 0 {
		t.Errorf("gyro right AngularRate = %f, expected negative", s.AngularRate)
	}
	if s := SteerRight.Sample(config.VariantTilt, 0); s.AccelX >= 0 {
		t.Errorf("tilt right AccelX = %f, expected negative", s.AccelX)
	}
	if s := SteerLeft.Sample(config.VariantGyro, 0); s.AngularRate <= 0 {
		t.Errorf("gyro left AngularRate = %f, expected positive", s.AngularRate)
	}
	if s := SteerNone.Sample(config.VariantGyro, 3); s.AngularRate != 0 {
		t.Errorf("none AngularRate = %f, expected 0", s.AngularRate)
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := Options{Frames: 1500, Steer: SteerSine, AutoRestart: true}

	a := Run(jumper.New(config.DefaultJumperConfig(), 7), opts, nil)
	b := Run(jumper.New(config.DefaultJumperConfig(), 7), opts, nil)

	if a.Hash != b.Hash || a.Frames != b.Frames || a.Sessions != b.Sessions {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
	if a.Frames != opts.Frames {
		t.Errorf("Frames = %d, expected %d with auto restart", a.Frames, opts.Frames)
	}
	if a.Sessions < 1 {
		t.Error("the first frame should start a session")
	}
}

func TestRunStopsAtEnd(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	g := jumper.New(cfg, 3)

	// Steering hard one way for a long time eventually misses a platform
	res := Run(g, Options{Frames: 100000, Steer: SteerLeft}, nil)

	if res.Phase == jumper.PhasePlay {
		t.Skipf("still playing after %d frames", res.Frames)
	}
	if res.Wins+res.Losses != 1 {
		t.Errorf("Wins+Losses = %d, expected exactly one ended session", res.Wins+res.Losses)
	}
	if res.Frames >= 100000 {
		t.Error("run should stop once the session ends")
	}
}
