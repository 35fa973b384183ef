package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for platform/coin placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes a game for the host.
// Returned by Game.State() after each update.
type GameState struct {
	Score    int    // Coins collected
	Phase    string // START, PLAY, WIN or GAME_OVER
	GameOver bool   // Whether the session ended (won or lost)
	Won      bool   // Whether the session ended with the target reached
}

// StepResult is returned by Game.Update() after each frame.
type StepResult struct {
	State GameState
}
