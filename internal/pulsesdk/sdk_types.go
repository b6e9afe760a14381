package pulsesdk

const (
	HeaderPulseVersion = "X-Pulse-Version"
	HeaderRequestID    = "X-Request-Id"
)
