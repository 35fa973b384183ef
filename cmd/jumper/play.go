package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/core"
	"github.com/vovakirdan/tilt-jumper/internal/games/jumper"
	"github.com/vovakirdan/tilt-jumper/internal/platform/tui"
	"github.com/vovakirdan/tilt-jumper/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to "jumper" (gyroscope steering);
"jumper-tilt" steers with the accelerometer model instead.

Controls:
  Left/Right, A/D  - Tilt the device
  Space/Enter      - Tap (start, restart)
  C                - Recalibrate the level position
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 10 coins to win, more coins, wider platforms
  normal - Config values
  hard   - 25 coins to win, fewer coins, narrower platforms
  fixed  - Config values

Examples:
  jumper play
  jumper play jumper-tilt
  jumper play --difficulty hard
  jumper play --config ./my-jumper.yaml --log jumper.log --verbose`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "jumper"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'jumper list' to see available games.")
		os.Exit(1)
	}

	if _, err := config.LookupPreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to Bubble Tea, so logs only go to --log
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	// Set config path, difficulty and logger before creation
	jumper.SetConfigPath(flagConfig)
	jumper.SetDifficultyPreset(flagDifficulty)
	jumper.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game.Reset(cfg)

	variant := config.VariantGyro
	if jg, ok := game.(*jumper.Game); ok {
		variant = jg.Config().Variant
	}

	logger.Info("session start", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", width, height))

	if runErr := tui.Run(game, variant, cfg, logger); runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	state := game.State()
	logger.Info("session end", "phase", state.Phase, "coins", state.Score)
}
