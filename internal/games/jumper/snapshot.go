package jumper

import (
	"math"

	"github.com/vovakirdan/tilt-jumper/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating it does not affect the game.
type Snapshot struct {
	Phase          Phase
	Platforms      []core.Rect
	PendingCoins   []core.Circle
	Body           core.Rect
	BodyVY         float64
	CameraY        float64
	CoinsCollected int
	TargetCoins    int
	Elapsed        float64
	Steering       float64
	Frontier       float64
	BestHeight     float64 // Highest point reached above the ground top
	Frames         int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	platforms := g.world.Platforms()
	rects := make([]core.Rect, len(platforms))
	for i, p := range platforms {
		rects[i] = p.Rect
	}

	coins := make([]core.Circle, 0, len(g.world.Coins()))
	for _, c := range g.world.Coins() {
		if c.Pending() {
			coins = append(coins, c.Circle)
		}
	}

	return Snapshot{
		Phase:          g.phase,
		Platforms:      rects,
		PendingCoins:   coins,
		Body:           g.body.Rect(),
		BodyVY:         g.body.VY(),
		CameraY:        g.cameraY,
		CoinsCollected: g.coins,
		TargetCoins:    g.cfg.Goal.TargetCoins,
		Elapsed:        g.elapsed,
		Steering:       g.steering.Value(),
		Frontier:       g.world.Frontier(),
		BestHeight:     g.bestY - (g.cfg.Platforms.GroundY + g.cfg.Platforms.GroundHeight),
		Frames:         g.frames,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.Phase)
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.CoinsCollected) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Frames)         //#nosec G115 -- hash computation
	mix(snap.Body.X)
	mix(snap.Body.Y)
	mix(snap.BodyVY)
	mix(snap.CameraY)
	mix(snap.Frontier)
	mix(snap.Steering)

	for _, p := range snap.Platforms {
		mix(p.X)
		mix(p.Y)
	}
	for _, c := range snap.PendingCoins {
		mix(c.X)
		mix(c.Y)
	}
	return h
}
