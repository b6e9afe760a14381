package health

import (
	"errors"
	"strings"
)

// Env is the deployment tier a process runs under.
type Env string

const (
	EnvDevelopment Env = "development"
	EnvTest        Env = "test"
	EnvStaging     Env = "staging"
	EnvProduction  Env = "production"
)

var ErrInvalidEnv = errors.New("health: environment must not be empty")

var knownEnvs = []Env{EnvDevelopment, EnvTest, EnvStaging, EnvProduction}

// ParseEnv normalizes a tier label. Any non-empty label is accepted, see Env.Known.
func ParseEnv(s string) (Env, error) {
	env := Env(strings.ToLower(strings.TrimSpace(s)))
	if env == "" {
		return "", ErrInvalidEnv
	}
	return env, nil
}

// Known reports whether env is one of the standard tiers.
func (e Env) Known() bool {
	for _, k := range knownEnvs {
		if e == k {
			return true
		}
	}
	return false
}

func (e Env) String() string {
	return string(e)
}
