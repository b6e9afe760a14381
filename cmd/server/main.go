package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/openmined/pulse/internal/logging"
	"github.com/openmined/pulse/internal/server"
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
		Use:          "pulse-server",
		Short:        "Pulse health service",
		Version:      version.Detailed(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger, closer, err := logging.New(logging.Options{
				Level:  cfg.Log.Level,
				Stdout: os.Stdout,
				File:   cfg.Log.File,
			})
			if err != nil {
				return err
			}
			defer closer.Close()
			slog.SetDefault(logger)

			srv, err := server.New(cfg)
			if err != nil {
				return err
			}

			defer slog.Info("Bye!")
			return srv.Start(cmd.Context())
		},
	}

	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().StringP("config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.Flags().String("env-file", defaultEnvFile, "Dotenv file loaded into the environment before reading config")
	rootCmd.Flags().StringP("env", "e", server.DefaultEnv.String(), "Deployment environment reported by /health")
	rootCmd.Flags().StringP("bind", "b", server.DefaultAddr, "Address to bind the server")
	rootCmd.Flags().String("cert", "", "Path to the TLS certificate file")
	rootCmd.Flags().String("key", "", "Path to the TLS key file")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*server.Config, error) {
	if err := loadEnvFile(cmd); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("env", server.DefaultEnv.String())
	v.SetDefault("http.addr", server.DefaultAddr)
	v.SetDefault("http.cert_file", "")
	v.SetDefault("http.key_file", "")
	v.SetDefault("http.cors_origins", []string{"*"})
	v.SetDefault("http.rate_limit", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config read '%s': %w", configPath, err)
		}
	}

	// PULSE_ENV, PULSE_HTTP_ADDR, PULSE_HTTP_CORS_ORIGINS=a,b ...
	v.SetEnvPrefix("PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindPFlag("env", cmd.Flags().Lookup("env"))
	v.BindPFlag("http.addr", cmd.Flags().Lookup("bind"))
	v.BindPFlag("http.cert_file", cmd.Flags().Lookup("cert"))
	v.BindPFlag("http.key_file", cmd.Flags().Lookup("key"))

	var cfg server.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config invalid: %w", err)
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
