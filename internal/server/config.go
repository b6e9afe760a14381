package server

import (
	"fmt"

	"github.com/openmined/pulse/internal/health"
	"github.com/ulule/limiter/v3"
)

const (
	DefaultAddr = "127.0.0.1:3001"
	DefaultEnv  = health.EnvDevelopment
)

type Config struct {
	Env  health.Env `mapstructure:"env"`
	HTTP HTTPConfig `mapstructure:"http"`
	Log  LogConfig  `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr        string   `mapstructure:"addr"`
	CertFile    string   `mapstructure:"cert_file"`
	KeyFile     string   `mapstructure:"key_file"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	RateLimit   string   `mapstructure:"rate_limit"` // ulule/limiter format, e.g. "600-M". Empty disables.
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Validate checks the config and normalizes the environment label.
func (c *Config) Validate() error {
	env, err := health.ParseEnv(string(c.Env))
	if err != nil {
		return fmt.Errorf("`env`: %w", err)
	}
	c.Env = env

	return c.HTTP.Validate()
}

func (c *HTTPConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("http `addr` is required")
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return fmt.Errorf("http `cert_file` and `key_file` must be set together")
	}
	if c.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.RateLimit); err != nil {
			return fmt.Errorf("http `rate_limit` %q: %w", c.RateLimit, err)
		}
	}
	return nil
}

func (c *HTTPConfig) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}
