package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-credential-auth/pkg/response"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB      Pinger
	Logger  *logrus.Logger
	Timeout time.Duration
}

func NewHealthHandler(db Pinger, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{DB: db, Logger: logger, Timeout: 2 * time.Second}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		h.Logger.WithError(err).Warn("health: database ping failed")
		response.Error[any](c, http.StatusServiceUnavailable, "database unavailable", response.ErrorBody{Code: "unavailable"})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"database": "ok"}, "healthy", nil)
}
