// Package jumper implements a tilt-controlled endless jumper.
// A ball bounces off procedurally generated platforms while the motion
// sensor steers it sideways; collecting enough coins wins, falling out of
// view loses.
package jumper

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/core"
	"github.com/vovakirdan/tilt-jumper/internal/registry"
)

// Phase is the game state machine position.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlay
	PhaseWin
	PhaseGameOver
)

// String returns the phase name shown to hosts.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlay:
		return "PLAY"
	case PhaseWin:
		return "WIN"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Game runs one jumper session.
type Game struct {
	id       string
	title    string
	variant  config.Variant
	cfg      *config.JumperConfig
	logger   *log.Logger
	world    *World
	body     *Body
	steering Steering
	phase    Phase
	cameraY  float64 // Center of the view; never moves down during play
	coins    int     // Coins collected this session
	elapsed  float64 // Seconds spent in PLAY
	bestY    float64 // Highest bottom edge reached
	frames   int     // PLAY frames simulated
}

// Option customizes a Game built with New.
type Option func(*Game)

// WithLogger sends state changes and pickups to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game from an explicit configuration and initializes the
// world with the given seed. A config that fails Validate is replaced by
// DefaultJumperConfig (keeping the requested variant) and a warning is
// logged. The config must not be modified afterwards.
func New(cfg config.JumperConfig, seed int64, opts ...Option) *Game {
	g := newGame(cfg.Variant)
	for _, opt := range opts {
		opt(g)
	}
	if err := cfg.Validate(); err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultJumperConfig()
	}
	g.setup(cfg, seed)
	return g
}

func newGame(variant config.Variant) *Game {
	if variant != config.VariantTilt {
		variant = config.VariantGyro
	}
	g := &Game{
		id:      "jumper",
		title:   "Tilt Jumper",
		variant: variant,
		logger:  log.New(io.Discard),
	}
	if variant == config.VariantTilt {
		g.id = "jumper-tilt"
		g.title = "Tilt Jumper (accelerometer)"
	}
	return g
}

// setup wires the components around cfg and resets everything.
func (g *Game) setup(cfg config.JumperConfig, seed int64) {
	cfg.Variant = g.variant
	g.cfg = &cfg
	g.steering = NewSteering(g.cfg)
	g.world = NewWorld(g.cfg, seed)
	g.body = NewBody(g.cfg, 0, 0)
	g.resetSession()
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.JumperConfig {
	return *g.cfg
}

// Reset loads the configuration from disk and starts a new session.
// Used by the registry path; tests build games with New.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if packageLogger != nil {
		g.logger = packageLogger
	}
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultJumperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	g.setup(cfg, rt.Seed)
}

// resetSession puts the body on the ground, recenters the camera and
// clears counters. The world is reinitialized by the caller.
func (g *Game) resetSession() {
	ground := g.cfg.Platforms.GroundY + g.cfg.Platforms.GroundHeight
	g.body.SetPosition((g.cfg.World.Width-g.cfg.Player.Width)/2, ground)
	g.body.SetVY(g.cfg.Physics.JumpVelocity)
	g.steering.Reset()
	g.cameraY = g.cfg.World.Height / 2
	g.coins = 0
	g.elapsed = 0
	g.frames = 0
	g.bestY = ground
	g.phase = PhaseStart
}

// restart regenerates the world and returns to START.
func (g *Game) restart() {
	g.world.Initialize()
	g.resetSession()
	g.logger.Debug("world reset",
		"platforms", len(g.world.Platforms()),
		"coins", len(g.world.Coins()),
		"frontier", g.world.Frontier())
}

// Update advances the game by one frame of dt seconds.
// dt is clamped to [0, MaxFrameTime]; a zero dt is a valid no-motion frame.
func (g *Game) Update(dt float64, in core.InputFrame) core.StepResult {
	dt = core.ClampF(core.Finite(dt), 0, g.cfg.Physics.MaxFrameTime)
	sample := in.Motion.Sanitized()

	switch g.phase {
	case PhaseStart:
		if in.Has(core.ActionTap) {
			g.steering.Reset()
			g.steering.Calibrate(sample)
			g.setPhase(PhasePlay)
		}

	case PhaseWin, PhaseGameOver:
		if in.Has(core.ActionTap) {
			from := g.phase
			g.restart()
			g.logger.Info("state change", "from", from, "to", g.phase)
		}

	case PhasePlay:
		g.step(dt, in, sample)
	}

	return core.StepResult{State: g.State()}
}

// step runs one PLAY frame. The order of operations is fixed:
// timer, steering, body, camera, generation, cleanup, pickups, end checks.
func (g *Game) step(dt float64, in core.InputFrame, sample core.MotionSample) {
	g.elapsed += dt
	g.frames++

	if in.Has(core.ActionRecalibrate) {
		g.steering.Calibrate(sample)
		g.logger.Debug("recalibrated", "variant", g.variant)
	}
	steer := g.steering.Update(sample, dt)

	g.body.Update(dt, steer, g.world.Platforms())

	body := g.body.Rect()
	if body.Y > g.cameraY {
		g.cameraY = body.Y
	}
	if body.Y > g.bestY {
		g.bestY = body.Y
	}

	height := g.cfg.World.Height
	g.world.GenerateUpTo(g.cameraY + g.cfg.Camera.AheadScreens*height)
	g.world.CleanupBelow(g.cameraY - g.cfg.Camera.CleanupScreens*height)

	if n := g.world.CollectOverlapping(g.body.Circle()); n > 0 {
		g.coins += n
		g.logger.Debug("coin collected", "coins", g.coins, "target", g.cfg.Goal.TargetCoins)
	}

	switch {
	case g.coins >= g.cfg.Goal.TargetCoins:
		g.setPhase(PhaseWin)
	case body.Top() < g.loseLine():
		g.setPhase(PhaseGameOver)
	}
}

// loseLine is the height below which the body's top edge ends the game.
func (g *Game) loseLine() float64 {
	return g.cameraY - g.cfg.World.Height/2 - g.cfg.Camera.LoseMargin
}

func (g *Game) setPhase(p Phase) {
	if p == g.phase {
		return
	}
	g.logger.Info("state change",
		"from", g.phase,
		"to", p,
		"coins", g.coins,
		"elapsed", g.elapsed)
	g.phase = p
}

// State returns the summary used by hosts.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.coins,
		Phase:    g.phase.String(),
		GameOver: g.phase == PhaseWin || g.phase == PhaseGameOver,
		Won:      g.phase == PhaseWin,
	}
}

// Phase returns the current state machine position.
func (g *Game) Phase() Phase {
	return g.phase
}

// configPath, difficultyPreset and packageLogger are set by the CLI
// before games are created through the registry.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	packageLogger    *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created through the registry.
func SetLogger(l *log.Logger) {
	packageLogger = l
}

// Register the game variants with the registry
func init() {
	registry.Register("jumper", func() registry.Game {
		return newGame(config.VariantGyro)
	})
	registry.Register("jumper-tilt", func() registry.Game {
		return newGame(config.VariantTilt)
	})
}
