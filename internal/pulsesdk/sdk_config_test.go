package pulsesdk

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		err  error
	}{
		{"default", Config{BaseURL: DefaultBaseURL}, nil},
		{"https-with-path", Config{BaseURL: "https://api.example.com/pulse"}, nil},
		{"empty", Config{}, ErrNoServerURL},
		{"no-scheme", Config{BaseURL: "localhost:3001"}, ErrInvalidServerURL},
		{"ftp", Config{BaseURL: "ftp://example.com"}, ErrInvalidServerURL},
		{"no-host", Config{BaseURL: "http://"}, ErrInvalidServerURL},
		{"negative-timeout", Config{BaseURL: DefaultBaseURL, Timeout: -time.Second}, ErrInvalidTimeout},
	}
	for _, test := range tests {
		err := test.cfg.Validate()
		if test.err == nil {
			assert.NoError(t, err, test.name)
		} else {
			assert.ErrorIs(t, err, test.err, test.name)
		}
	}
}

func TestConfigTimeoutDefault(t *testing.T) {
	assert.Equal(t, DefaultTimeout, (&Config{}).timeout())
	assert.Equal(t, time.Second, (&Config{Timeout: time.Second}).timeout())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(&Config{})
	assert.ErrorIs(t, err, ErrNoServerURL)
}

type silentError struct{}

func (silentError) Error() string { return "" }

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "Failed to fetch health status", ErrorMessage(ErrFetchFailed))
	assert.Equal(t, "dial tcp: refused", ErrorMessage(errors.New("dial tcp: refused")))
	assert.Equal(t, UnknownErrorMessage, ErrorMessage(silentError{}))
}
