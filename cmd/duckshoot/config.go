package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/duckshoot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the Duck Hunt configuration as YAML after file discovery
and the difficulty preset are applied. Use --defaults to print the
built-in file, a good starting point for ~/.duckshoot/configs/duckhunt.yaml.

Examples:
  duckshoot config --difficulty hard
  duckshoot config --defaults > ~/.duckshoot/configs/duckhunt.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagConfigDefaults bool

func init() {
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to a duckhunt.yaml override")
	configCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "normal", "Difficulty preset (easy, normal, hard, fixed)")
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML(defaultGameID))
		return err
	}

	out, err := effectiveConfigYAML(flagConfigPath, flagDifficulty)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// effectiveConfigYAML loads the config, applies the preset and encodes the result.
func effectiveConfigYAML(path, difficulty string) ([]byte, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadDuckHunt(path)
	if err != nil {
		return nil, err
	}
	config.ApplyDuckHuntPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
