package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tasty-shawarma/shawarma-sim/sim"
)

// loadConfig returns the default balance overlaid with the YAML file at path.
// Fields absent from the file keep their defaults. Unknown fields are errors so
// typos never silently fall back to a default.
func loadConfig(path string) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := decodeConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(data []byte, cfg *sim.Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// writeDefaults writes the default balance as YAML.
func writeDefaults(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sim.DefaultConfig()); err != nil {
		return err
	}
	return enc.Close()
}

// defaultsCmd prints the default balance, ready to be edited and passed to --config
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default game balance as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeDefaults(cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Failed to encode defaults: %v", err)
		}
	},
}
