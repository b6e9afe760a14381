package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/openmined/pulse/internal/client/config"
	"github.com/openmined/pulse/internal/client/status"
	"github.com/openmined/pulse/internal/logging"
	"github.com/openmined/pulse/internal/pulsesdk"
	"github.com/openmined/pulse/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultEnvFile = ".env"

func main() {
	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pulse",
		Short:        "Show the status of a Pulse backend",
		Version:      version.Detailed(),
		SilenceUsage: true,
		RunE:         runStatus,
	}

	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringP("api-url", "u", config.DefaultAPIURL, "Base URL of the Pulse server")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().Bool("plain", false, "Print the result once without the interactive view")
	rootCmd.PersistentFlags().Bool("once", false, "Exit the interactive view as soon as the check resolves")
	rootCmd.PersistentFlags().String("log-file", config.DefaultLogFilePath, "Log file")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file")
	rootCmd.PersistentFlags().String("env-file", defaultEnvFile, "Dotenv file loaded into the environment before reading config")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newConfigPathCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the backend health once and show the result",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the terminal belongs to the status view, so logs only go to the file
	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	sdk, err := pulsesdk.New(cfg.SDKConfig())
	if err != nil {
		return err
	}
	defer sdk.Close()

	slog.Info("pulse status", "version", version.Short(), "server", sdk.BaseURL(), "config", cfg.Path)

	opts := statusOptions(cmd, sdk.BaseURL())
	if plain, _ := cmd.Flags().GetBool("plain"); plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		_, err := status.RunPlain(cmd.Context(), sdk.Health, opts, cmd.OutOrStdout())
		return err
	}
	return status.Run(cmd.Context(), sdk.Health, opts)
}

func statusOptions(cmd *cobra.Command, serverURL string) status.Options {
	once, _ := cmd.Flags().GetBool("once")
	return status.Options{
		ServerURL:    serverURL,
		ExitOnSettle: once,
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := loadEnvFile(cmd); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("api_url", config.DefaultAPIURL)
	v.SetDefault("timeout", config.DefaultTimeout)
	v.SetDefault("log_file", config.DefaultLogFilePath)
	v.SetDefault("log_level", "info")

	if configPath := resolveConfigPath(cmd); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			enoent := errors.Is(err, os.ErrNotExist)
			if !enoent || cmd.Flag("config").Changed {
				return nil, fmt.Errorf("config read '%s': %w", configPath, err)
			}
		}
	}

	// PULSE_API_URL, PULSE_TIMEOUT, PULSE_LOG_FILE, PULSE_LOG_LEVEL
	v.SetEnvPrefix("PULSE")
	v.AutomaticEnv()

	v.BindPFlag("api_url", cmd.Flags().Lookup("api-url"))
	v.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	v.BindPFlag("log_file", cmd.Flags().Lookup("log-file"))

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	cfg.Path = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile loads the dotenv file. A missing default file is not an error.
func loadEnvFile(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("env-file") {
			return nil
		}
		return fmt.Errorf("env file '%s': %w", envFile, err)
	}
	return nil
}
