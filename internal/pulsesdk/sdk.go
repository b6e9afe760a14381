package pulsesdk

import (
	"github.com/imroc/req/v3"
	"github.com/openmined/pulse/internal/version"
)

// PulseSDK is the client for the Pulse HTTP API
type PulseSDK struct {
	client  *req.Client
	baseURL string
	Health  *HealthAPI
}

// New creates a client for the server at config.BaseURL.
// Requests are made exactly once: the client never retries.
func New(config *Config) (*PulseSDK, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client := req.C().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.timeout()).
		SetUserAgent(version.UserAgent()).
		SetCommonHeader(HeaderPulseVersion, version.Version).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	return &PulseSDK{
		client:  client,
		baseURL: config.BaseURL,
		Health:  newHealthAPI(client),
	}, nil
}

func (s *PulseSDK) BaseURL() string {
	return s.baseURL
}

// Close releases idle connections.
func (s *PulseSDK) Close() {
	s.client.GetClient().CloseIdleConnections()
}
