package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.PersistentFlags().StringP("config", "c", "", "path to config file")
	return cmd
}

func isolateHome(t *testing.T) string {
	t.Helper()
	oldHome := home
	home = t.TempDir()
	t.Cleanup(func() { home = oldHome })
	return home
}

func TestResolveConfigPathFlagBeatsEnv(t *testing.T) {
	cmd := newTestCmd()
	flagPath := "/tmp/flag/config.json"
	envPath := "/tmp/env/config.json"

	t.Setenv("PULSE_CONFIG_PATH", envPath)
	err := cmd.PersistentFlags().Set("config", flagPath)
	assert.NoError(t, err)

	resolved := resolveConfigPath(cmd)
	assert.Equal(t, flagPath, resolved)
}

func TestResolveConfigPathUsesEnvWhenNoFlag(t *testing.T) {
	cmd := newTestCmd()
	envPath := "/tmp/env/config.json"

	t.Setenv("PULSE_CONFIG_PATH", envPath)

	resolved := resolveConfigPath(cmd)
	assert.Equal(t, envPath, resolved)
}

func TestResolveConfigPathFindsExistingFile(t *testing.T) {
	isolateHome(t)

	cmd := newTestCmd()
	t.Setenv("PULSE_CONFIG_PATH", "")

	existing := filepath.Join(home, ".config", "pulse", "config.json")
	err := os.MkdirAll(filepath.Dir(existing), 0o755)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(existing, []byte("{}"), 0o644))

	resolved := resolveConfigPath(cmd)
	assert.Equal(t, existing, resolved)
}

func TestResolveConfigPathIgnoresDirectories(t *testing.T) {
	isolateHome(t)

	cmd := newTestCmd()
	t.Setenv("PULSE_CONFIG_PATH", "")

	dir := filepath.Join(home, ".config", "pulse", "config.json")
	assert.NoError(t, os.MkdirAll(dir, 0o755))

	assert.Empty(t, resolveConfigPath(cmd))
}
