package jumper

import (
	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/core"
)

// Body is the bouncing player. Y is its bottom edge.
type Body struct {
	cfg  *config.JumperConfig
	rect core.Rect
	vy   float64
}

// NewBody creates a body at (x, y) moving upward at jump velocity.
func NewBody(cfg *config.JumperConfig, x, y float64) *Body {
	return &Body{
		cfg:  cfg,
		rect: core.NewRect(x, y, cfg.Player.Width, cfg.Player.Height),
		vy:   cfg.Physics.JumpVelocity,
	}
}

// Rect returns the body's bounding rectangle.
func (b *Body) Rect() core.Rect {
	return b.rect
}

// VY returns the vertical velocity (positive = up).
func (b *Body) VY() float64 {
	return b.vy
}

// SetPosition moves the body's bottom-left corner.
func (b *Body) SetPosition(x, y float64) {
	b.rect.X = x
	b.rect.Y = y
}

// SetVY overrides the vertical velocity.
func (b *Body) SetVY(vy float64) {
	b.vy = vy
}

// Circle approximates the body with its centered inscribed circle.
func (b *Body) Circle() core.Circle {
	return core.Circle{X: b.rect.CenterX(), Y: b.rect.CenterY(), R: b.rect.W / 2}
}

// Update advances the body by dt: horizontal steering with wrap-around,
// gravity, then one-sided landing against platforms.
// Returns true if the body bounced this frame.
func (b *Body) Update(dt, steering float64, platforms []Platform) bool {
	phys := &b.cfg.Physics

	b.rect.X += steering * phys.MaxHorizontalSpeed * dt
	b.wrap()

	b.vy += phys.Gravity * dt
	oldY := b.rect.Y
	b.rect.Y += b.vy * dt

	// Ascending bodies pass through platforms from below.
	if b.vy > 0 {
		return false
	}

	top, ok := b.landing(oldY, platforms)
	if !ok {
		return false
	}
	b.rect.Y = top
	b.vy = phys.JumpVelocity
	return true
}

// wrap teleports the body to the opposite side once it fully leaves the world.
func (b *Body) wrap() {
	width := b.cfg.World.Width
	if b.rect.Right() < 0 {
		b.rect.X = width
	} else if b.rect.X > width {
		b.rect.X = -b.rect.W
	}
}

// landing finds the platform crossed between oldY and the current Y.
// When several qualify, the highest top wins since it is the first
// surface a falling body reaches.
func (b *Body) landing(oldY float64, platforms []Platform) (float64, bool) {
	centerX := b.rect.CenterX()
	best := 0.0
	found := false
	for _, p := range platforms {
		top := p.Top()
		if oldY < top || b.rect.Y > top || !p.SpansX(centerX) {
			continue
		}
		if !found || top > best {
			best = top
			found = true
		}
	}
	return best, found
}
