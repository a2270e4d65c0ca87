package handler

import (
	"net/http"

	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/internal/service"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
	"github.com/labstack/echo/v4"
)

type ConnectHandler struct {
	service service.ConnectService
	logger  *logger.Logger
}

func NewConnectHandler(service service.ConnectService, log *logger.Logger) *ConnectHandler {
	return &ConnectHandler{
		service: service,
		logger:  log,
	}
}

func (h *ConnectHandler) Calculate(c echo.Context) error {
	ctx := logger.WithSource(c.Request().Context(), string(domain.SourceConnect))

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn(ctx, "Failed to get file from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	breakdown, err := h.service.Calculate(ctx, uploadedFile(file))
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error(ctx, "Failed to calculate connect earnings",
				"error", err,
			)
		}
		return c.JSON(status, map[string]string{
			"error": domain.UserMessageFor(domain.SourceConnect, err),
		})
	}

	return c.JSON(http.StatusOK, newConnectEarningsResponse(breakdown))
}
