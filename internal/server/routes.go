package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmined/pulse/internal/health"
	"github.com/openmined/pulse/internal/server/handlers/api"
	healthH "github.com/openmined/pulse/internal/server/handlers/health"
	"github.com/openmined/pulse/internal/server/middlewares"
	"github.com/openmined/pulse/internal/version"
)

var (
	errNotFound         = errors.New("not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

func SetupRoutes(config *Config) (http.Handler, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	healthHandler := healthH.New(config.Env)

	r.Use(middlewares.Logger(slog.Default()))
	r.Use(middlewares.EchoRequestID())
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	if config.HTTP.TLSEnabled() {
		r.Use(middlewares.HSTS(config.Env == health.EnvDevelopment))
	}
	r.Use(middlewares.CORS(config.HTTP.CORSOrigins))
	r.Use(middlewares.GZIP())
	if config.HTTP.RateLimit != "" {
		rateLimiter, err := middlewares.RateLimiter(config.HTTP.RateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(rateLimiter)
	}

	r.GET("/", IndexHandler)
	r.GET("/health", healthHandler.Health)

	r.NoRoute(func(c *gin.Context) {
		api.AbortWithError(c, http.StatusNotFound, api.CodeNotFound, errNotFound)
	})

	r.NoMethod(func(c *gin.Context) {
		api.AbortWithError(c, http.StatusMethodNotAllowed, api.CodeMethodNotAllowed, errMethodNotAllowed)
	})

	return r.Handler(), nil
}

func IndexHandler(ctx *gin.Context) {
	ctx.String(http.StatusOK, version.DetailedWithApp())
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
