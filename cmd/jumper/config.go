package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-jumper/internal/config"
)

var flagConfigCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in jumper.yaml. Save it to ~/.arcade/configs/jumper.yaml
or ./configs/jumper.yaml and edit the values you want to change; fields
you remove keep their defaults.

With --check, validates a config file instead.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate this config file and exit")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigCheck != "" {
		cfg, err := config.LoadJumper(flagConfigCheck)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (variant %s, %d coins to win)\n",
			flagConfigCheck, cfg.Variant, cfg.Goal.TargetCoins)
		return nil
	}

	_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
	return err
}
