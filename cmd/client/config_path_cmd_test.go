package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfigPathCommand_PrintsResolvedPath(t *testing.T) {
	cmd := &cobra.Command{Use: "pulse"}
	cmd.PersistentFlags().StringP("config", "c", "", "path to config file")
	cmd.AddCommand(newConfigPathCmd())

	t.Setenv("PULSE_CONFIG_PATH", "/etc/pulse/config.yaml")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config-path"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "/etc/pulse/config.yaml", strings.TrimSpace(out.String()))
}
