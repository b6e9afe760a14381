package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openmined/pulse/internal/pulsesdk"
)

var (
	home, _            = os.UserHomeDir()
	DefaultConfigPath  = filepath.Join(home, ".pulse", "config.json")
	DefaultLogFilePath = filepath.Join(home, ".pulse", "logs", "pulse.log")
	DefaultAPIURL      = pulsesdk.DefaultBaseURL
	DefaultTimeout     = pulsesdk.DefaultTimeout
)

// Config is resolved once at startup from file, environment and flags.
type Config struct {
	APIURL   string        `mapstructure:"api_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogFile  string        `mapstructure:"log_file"`
	LogLevel string        `mapstructure:"log_level"`
	Path     string        `mapstructure:"-"`
}

func (c *Config) Validate() error {
	if err := c.SDKConfig().Validate(); err != nil {
		return fmt.Errorf("`api_url` %q: %w", c.APIURL, err)
	}
	return nil
}

func (c *Config) SDKConfig() *pulsesdk.Config {
	return &pulsesdk.Config{
		BaseURL: c.APIURL,
		Timeout: c.Timeout,
	}
}
