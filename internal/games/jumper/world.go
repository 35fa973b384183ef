package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/core"
)

// Platform is a landing surface. Platforms never change once spawned.
type Platform struct {
	core.Rect
	Ground bool // The full-width starting floor
}

// CoinState tells whether a coin can still be picked up.
type CoinState int

const (
	CoinActive CoinState = iota
	CoinCollected
)

// Coin is a pickup floating above a platform.
type Coin struct {
	core.Circle
	State CoinState
}

// Pending reports whether the coin can still be collected.
func (c Coin) Pending() bool {
	return c.State == CoinActive
}

// World owns the endless column of platforms and coins.
// Platforms are spawned one per StepY at the generation frontier and
// retired once they scroll below the cleanup frontier.
type World struct {
	cfg       *config.JumperConfig
	rng       *rand.Rand
	platforms []Platform
	coins     []Coin
	frontier  float64 // Y of the next platform to spawn
}

// NewWorld creates a world seeded for reproducible layouts and fills
// the first screens.
func NewWorld(cfg *config.JumperConfig, seed int64) *World {
	w := &World{
		cfg:       cfg,
		platforms: make([]Platform, 0, 32),
		coins:     make([]Coin, 0, 16),
	}
	w.Reset(seed)
	return w
}

// Reset reseeds the RNG and reinitializes the world.
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.Initialize()
}

// Initialize clears everything, lays the ground and pre-generates
// platforms up to FirstScreens world heights so nothing pops in at start.
// The RNG stream continues, so a restart gets a fresh layout.
func (w *World) Initialize() {
	p := &w.cfg.Platforms
	w.platforms = w.platforms[:0]
	w.coins = w.coins[:0]

	w.platforms = append(w.platforms, Platform{
		Rect:   core.NewRect(0, p.GroundY, w.cfg.World.Width, p.GroundHeight),
		Ground: true,
	})

	w.frontier = p.FirstY
	w.GenerateUpTo(w.cfg.World.Height * p.FirstScreens)
}

// GenerateUpTo spawns platforms until the frontier reaches targetY.
// Calling it with an already covered target does nothing.
func (w *World) GenerateUpTo(targetY float64) {
	for w.frontier < targetY {
		w.spawn(w.frontier)
		w.frontier += w.cfg.Platforms.StepY
	}
}

// spawn places one platform at height y and maybe a coin above it.
func (w *World) spawn(y float64) {
	p := &w.cfg.Platforms
	minX := p.Margin
	maxX := w.cfg.World.Width - p.Width - p.Margin
	x := minX
	if maxX > minX {
		x = minX + w.rng.Float64()*(maxX-minX)
	}

	plat := Platform{Rect: core.NewRect(x, y, p.Width, p.Height)}
	w.platforms = append(w.platforms, plat)

	if w.rng.Float64() < w.cfg.Coins.SpawnChance {
		w.coins = append(w.coins, Coin{
			Circle: core.Circle{
				X: plat.CenterX(),
				Y: plat.Top() + w.cfg.Coins.OffsetY,
				R: w.cfg.Coins.Radius,
			},
			State: CoinActive,
		})
	}
}

// CleanupBelow drops platforms whose top is below thresholdY and coins
// that are collected or whose top is below thresholdY.
func (w *World) CleanupBelow(thresholdY float64) {
	keptPlatforms := w.platforms[:0]
	for _, p := range w.platforms {
		if p.Top() >= thresholdY {
			keptPlatforms = append(keptPlatforms, p)
		}
	}
	w.platforms = keptPlatforms

	keptCoins := w.coins[:0]
	for _, c := range w.coins {
		if c.Pending() && c.Top() >= thresholdY {
			keptCoins = append(keptCoins, c)
		}
	}
	w.coins = keptCoins
}

// CollectOverlapping marks every pending coin touching the circle as
// collected and returns how many were picked up.
func (w *World) CollectOverlapping(c core.Circle) int {
	collected := 0
	for i := range w.coins {
		if w.coins[i].Pending() && w.coins[i].Overlaps(c) {
			w.coins[i].State = CoinCollected
			collected++
		}
	}
	return collected
}

// Platforms returns the active platforms. The slice is owned by the world.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Coins returns the stored coins, including ones collected this frame
// that have not been cleaned up yet.
func (w *World) Coins() []Coin {
	return w.coins
}

// Frontier returns the height of the next platform to be generated.
func (w *World) Frontier() float64 {
	return w.frontier
}
