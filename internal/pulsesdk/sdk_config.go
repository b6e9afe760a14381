package pulsesdk

import (
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:3001"
	DefaultTimeout = 10 * time.Second
)

// Config is the configuration for the PulseSDK
type Config struct {
	BaseURL string        // BaseURL is required, scheme must be http or https
	Timeout time.Duration // Timeout bounds the whole request. Zero means DefaultTimeout.
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrNoServerURL
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidServerURL
	}

	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	return nil
}

func (c *Config) timeout() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
