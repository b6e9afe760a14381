// Package health holds the wire contract shared by the health endpoint and its clients.
package health

import (
	"time"
)

const (
	// StatusOK is the only status the health endpoint reports.
	StatusOK = "ok"

	// TimestampLayout is the ISO-8601 layout of Status.Timestamp.
	TimestampLayout = time.RFC3339
)

// Status is the body of GET /health. It is built per request and never stored.
type Status struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// NewStatus reports liveness at the given instant for the given environment.
func NewStatus(now time.Time, env Env) *Status {
	return &Status{
		Status:      StatusOK,
		Timestamp:   now.UTC().Format(TimestampLayout),
		Environment: env.String(),
	}
}

// Time parses Timestamp. RFC3339Nano parsing accepts timestamps with or without fractional seconds.
func (s *Status) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s.Timestamp)
}
