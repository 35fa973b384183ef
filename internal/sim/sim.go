// Package sim drives a jumper game headlessly with scripted motion input.
package sim

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/core"
	"github.com/vovakirdan/tilt-jumper/internal/games/jumper"
)

// Steer is a scripted steering pattern.
type Steer string

const (
	SteerNone  Steer = "none"
	SteerSine  Steer = "sine"
	SteerLeft  Steer = "left"
	SteerRight Steer = "right"
)

// ParseSteer converts a flag value to a Steer.
func ParseSteer(s string) (Steer, error) {
	switch Steer(strings.ToLower(strings.TrimSpace(s))) {
	case SteerNone, "":
		return SteerNone, nil
	case SteerSine:
		return SteerSine, nil
	case SteerLeft:
		return SteerLeft, nil
	case SteerRight:
		return SteerRight, nil
	}
	return "", fmt.Errorf("sim: unknown steering script %q (want none, sine, left or right)", s)
}

// Script amplitudes
const (
	gyroRate    = 1.5  // rad/s
	tiltAccel   = 3.0  // m/s^2
	sinePeriod  = 2.5  // seconds
	maxRestarts = 1000 // safety stop when AutoRestart loops
)

// direction returns the steering direction in [-1, 1] at time t.
func (s Steer) direction(t float64) float64 {
	switch s {
	case SteerSine:
		return math.Sin(2 * math.Pi * t / sinePeriod)
	case SteerLeft:
		return -1
	case SteerRight:
		return 1
	}
	return 0
}

// Sample returns the motion reading that steers in the script's direction
// at time t for the given variant.
func (s Steer) Sample(variant config.Variant, t float64) core.MotionSample {
	d := s.direction(t)
	if variant == config.VariantTilt {
		return core.MotionSample{AccelX: -d * tiltAccel}
	}
	return core.MotionSample{AngularRate: -d * gyroRate}
}

// Options configure a headless run.
type Options struct {
	Frames      int
	DT          float64
	Steer       Steer
	AutoRestart bool // Tap again after WIN or GAME_OVER instead of stopping
}

// Result summarizes a headless run.
type Result struct {
	Phase    jumper.Phase
	Frames   int // Frames fed to the game
	Sessions int // Sessions started
	Wins     int
	Losses   int
	Snapshot jumper.Snapshot
	Hash     uint64
}

// Run feeds opts.Frames frames into g. The first frame taps to leave START.
func Run(g *jumper.Game, opts Options, logger *log.Logger) Result {
	if opts.DT <= 0 {
		opts.DT = 1.0 / 60.0
	}
	variant := g.Config().Variant

	var res Result
	t := 0.0
	for res.Frames < opts.Frames {
		in := core.NewInputFrame()
		in.Motion = opts.Steer.Sample(variant, t)

		phase := g.Phase()
		switch phase {
		case jumper.PhaseStart:
			in.Set(core.ActionTap)
			res.Sessions++
		case jumper.PhaseWin, jumper.PhaseGameOver:
			if !opts.AutoRestart || res.Sessions >= maxRestarts {
				return res.finish(g)
			}
			in.Set(core.ActionTap)
		}

		g.Update(opts.DT, in)
		res.Frames++
		t += opts.DT

		if phase == jumper.PhasePlay && g.Phase() != jumper.PhasePlay {
			snap := g.Snapshot()
			if g.Phase() == jumper.PhaseWin {
				res.Wins++
			} else {
				res.Losses++
			}
			if logger != nil {
				logger.Info("session ended",
					"session", res.Sessions,
					"phase", g.Phase(),
					"coins", snap.CoinsCollected,
					"height", fmt.Sprintf("%.0f", snap.BestHeight),
					"elapsed", fmt.Sprintf("%.2fs", snap.Elapsed))
			}
		}
	}
	return res.finish(g)
}

func (r Result) finish(g *jumper.Game) Result {
	r.Phase = g.Phase()
	r.Snapshot = g.Snapshot()
	r.Hash = r.Snapshot.Hash()
	return r
}
