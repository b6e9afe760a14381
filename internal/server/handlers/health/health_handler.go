package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openmined/pulse/internal/health"
)

type HealthHandler struct {
	env health.Env
	now func() time.Time
}

// New returns a handler reporting env. The environment is fixed for the lifetime of the process.
func New(env health.Env) *HealthHandler {
	return &HealthHandler{
		env: env,
		now: time.Now,
	}
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Liveness check with the deployment environment. No authentication required.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	health.Status
//	@Router			/health [get]
func (h *HealthHandler) Health(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, health.NewStatus(h.now(), h.env))
}
