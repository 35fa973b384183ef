package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-jumper/internal/config"
	"github.com/vovakirdan/tilt-jumper/internal/games/jumper"
	"github.com/vovakirdan/tilt-jumper/internal/sim"
)

var (
	flagFrames      int
	flagSteer       string
	flagVariant     string
	flagSimConfig   string
	flagSimPreset   string
	flagAutoRestart bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headlessly",
	Long: `Runs the game loop without a terminal UI at a fixed step of 1/fps
seconds, feeding a scripted steering input. The first frame taps to
start. Logs go to stderr (or --log) and a summary is printed at the end.

Steering scripts:
  none   - Hold the device level
  sine   - Sway left and right
  left   - Hold a left tilt
  right  - Hold a right tilt

Examples:
  jumper sim --frames 3600 --steer sine --seed 42
  jumper sim --variant tilt --steer right --verbose
  jumper sim --frames 100000 --auto-restart --seed 1`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simCmd.Flags().StringVar(&flagSteer, "steer", "sine", "Steering script: none, sine, left, right")
	simCmd.Flags().StringVar(&flagVariant, "variant", "", "Steering variant: gyro or tilt (default from config)")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagSimPreset, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().BoolVar(&flagAutoRestart, "auto-restart", false, "Start a new session after WIN or GAME_OVER")
}

func runSim(cmd *cobra.Command, _ []string) error {
	steer, err := sim.ParseSteer(flagSteer)
	if err != nil {
		return err
	}
	preset, err := config.LookupPreset(flagSimPreset)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadJumper(flagSimConfig)
	if err != nil {
		return err
	}
	config.ApplyJumperPreset(&cfg, preset)
	switch config.Variant(flagVariant) {
	case "":
	case config.VariantGyro, config.VariantTilt:
		cfg.Variant = config.Variant(flagVariant)
	default:
		return fmt.Errorf("unknown variant %q (want gyro or tilt)", flagVariant)
	}

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	s := seed()
	game := jumper.New(cfg, s, jumper.WithLogger(logger))
	logger.Info("sim start", "game", game.ID(), "seed", s, "frames", flagFrames, "steer", steer)

	res := sim.Run(game, sim.Options{
		Frames:      flagFrames,
		DT:          1.0 / float64(fps),
		Steer:       steer,
		AutoRestart: flagAutoRestart,
	}, logger)

	out := cmd.OutOrStdout()
	snap := res.Snapshot
	fmt.Fprintf(out, "game:      %s\n", game.ID())
	fmt.Fprintf(out, "seed:      %d\n", s)
	fmt.Fprintf(out, "state:     %s\n", res.Phase)
	fmt.Fprintf(out, "frames:    %d\n", res.Frames)
	fmt.Fprintf(out, "sessions:  %d (won %d, lost %d)\n", res.Sessions, res.Wins, res.Losses)
	fmt.Fprintf(out, "coins:     %d/%d\n", snap.CoinsCollected, snap.TargetCoins)
	fmt.Fprintf(out, "height:    %.0f\n", snap.BestHeight)
	fmt.Fprintf(out, "elapsed:   %.2fs\n", snap.Elapsed)
	fmt.Fprintf(out, "hash:      %016x\n", res.Hash)
	return nil
}
