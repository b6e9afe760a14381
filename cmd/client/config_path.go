package main

import (
	"os"
	"path/filepath"

	"github.com/openmined/pulse/internal/client/config"
	"github.com/spf13/cobra"
)

var home, _ = os.UserHomeDir()

// resolveConfigPath determines which config file path to use, honoring (in order):
// 1) An explicitly set --config flag
// 2) PULSE_CONFIG_PATH environment variable
// 3) Existing config files in common locations
//
// An empty result means no config file is read.
func resolveConfigPath(cmd *cobra.Command) string {
	if cfgFlag := cmd.Flag("config"); cfgFlag != nil && cfgFlag.Changed {
		return cfgFlag.Value.String()
	}

	if envPath := os.Getenv("PULSE_CONFIG_PATH"); envPath != "" {
		return envPath
	}

	candidates := []string{
		config.DefaultConfigPath,
		filepath.Join(home, ".config", "pulse", "config.json"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}

	return ""
}
