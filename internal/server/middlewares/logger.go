package middlewares

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	slogGin "github.com/samber/slog-gin"
)

// Logger writes one access log record per request under the "http" group.
// Request ids are taken from X-Request-Id or generated. Only generated ids are
// set on the response, see EchoRequestID.
func Logger(logger *slog.Logger) gin.HandlerFunc {
	return slogGin.NewWithConfig(logger.WithGroup("http"), slogGin.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
		WithRequestID:    true,
		WithTraceID:      true,
		WithSpanID:       true,
	})
}

// EchoRequestID sets the request id chosen by Logger on the response, including
// ids supplied by the caller. It must be installed after Logger.
func EchoRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := slogGin.GetRequestID(c); id != "" {
			c.Header(slogGin.RequestIDHeaderKey, id)
		}
		c.Next()
	}
}
