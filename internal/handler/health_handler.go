package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		startedAt: time.Now(),
		now:       time.Now,
	}
}

func (h *HealthHandler) Check(c echo.Context) error {
	now := h.now()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"timestamp":      now.Format(time.RFC3339),
		"uptime_seconds": int64(now.Sub(h.startedAt).Seconds()),
		"sources":        []string{"connect", "prolific"},
	})
}
