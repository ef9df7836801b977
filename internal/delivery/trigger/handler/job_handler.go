// Package handler contains the scheduler-facing job endpoint handlers.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "attic/internal/delivery/context"
	"attic/internal/usecase"

	"github.com/labstack/echo/v4"
)

// JobHandler exposes the pipeline jobs to the external scheduler. Each
// endpoint runs one complete invocation synchronously and returns its
// summary, so the scheduler's own logs carry the run outcome.
type JobHandler struct {
	logger    *slog.Logger
	ingestion usecase.IngestionUsecase
	expiry    usecase.ExpiryUsecase
}

// NewJobHandler creates a new job handler
func NewJobHandler(logger *slog.Logger, ingestion usecase.IngestionUsecase, expiry usecase.ExpiryUsecase) *JobHandler {
	return &JobHandler{
		logger:    logger,
		ingestion: ingestion,
		expiry:    expiry,
	}
}

// HandleIngestion runs the full ingestion pipeline once.
func (h *JobHandler) HandleIngestion(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	summary, err := h.ingestion.Run(ctx)
	if err != nil {
		logger.Error("ingestion job failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, summary)
}

// HandleExpiryCheck runs the warranty-expiry job once.
func (h *JobHandler) HandleExpiryCheck(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	summary, err := h.expiry.Run(ctx)
	if err != nil {
		logger.Error("expiry-check job failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, summary)
}
