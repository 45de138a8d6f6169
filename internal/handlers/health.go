package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailywell/backend/internal/apierror"
	"github.com/dailywell/backend/internal/logger"
	"github.com/dailywell/backend/internal/metrics"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a health handler that pings db on each check
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		metrics.SetDatabaseUp(false)
		logger.Ctx(c.Request.Context()).Warn("health check failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewUnavailableError(apierror.GetRequestID(c), 5))
		return
	}

	metrics.SetDatabaseUp(true)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
