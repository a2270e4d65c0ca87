package handler

import (
	"net/http"

	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/internal/service"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
	"github.com/labstack/echo/v4"
)

type StudyHandler struct {
	service service.StudyService
	logger  *logger.Logger
}

func NewStudyHandler(service service.StudyService, log *logger.Logger) *StudyHandler {
	return &StudyHandler{
		service: service,
		logger:  log,
	}
}

func (h *StudyHandler) Upload(c echo.Context) error {
	ctx := logger.WithSource(c.Request().Context(), string(domain.SourceProlific))

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn(ctx, "Failed to get file from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	upload, err := h.service.Upload(ctx, uploadedFile(file))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, StudyUploadResponse{
		UploadID:     upload.ID,
		FileName:     upload.FileName,
		TotalStudies: upload.TotalStudies,
		Message:      service.LoadedMessage(upload.TotalStudies),
	})
}

// Calculate accepts conversion_rate as a form field or query parameter.
func (h *StudyHandler) Calculate(c echo.Context) error {
	ctx := c.Request().Context()
	uploadID := c.Param("id")

	calc, err := h.service.Calculate(ctx, uploadID, c.FormValue("conversion_rate"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, newStudyCalculationResponse(
		uploadID, calc, service.CalculatedMessage(calc.Result.ValidStudies),
	))
}

func (h *StudyHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	upload, err := h.service.GetUpload(ctx, c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, upload)
}

func (h *StudyHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.service.DeleteUpload(ctx, c.Param("id")); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *StudyHandler) fail(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request().Context(), "Study request failed",
			"error", err,
		)
	}

	return c.JSON(status, map[string]string{
		"error": domain.UserMessageFor(domain.SourceProlific, err),
	})
}
