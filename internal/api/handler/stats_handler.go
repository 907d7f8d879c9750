package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/ordering-system/internal/api/metrics"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// StatsHandler serves the admin reporting endpoints. Both routes are behind
// the full admin gate.
type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Global returns store-wide counts and total revenue.
//
// @Summary      Global statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.GlobalStats
// @Failure      403  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /api/v1/admin/stats [get]
func (h *StatsHandler) Global(c echo.Context) error {
	start := time.Now()
	stats, err := h.statsService.Global(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.ReportDuration.WithLabelValues("global").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, stats)
}

// Categories returns the per-category quantity and revenue breakdown. Row
// order is unspecified; clients sort as needed.
//
// @Summary      Per-category sales statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CategoryStat
// @Failure      403  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /api/v1/admin/stats/categories [get]
func (h *StatsHandler) Categories(c echo.Context) error {
	start := time.Now()
	stats, err := h.statsService.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.ReportDuration.WithLabelValues("categories").Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, stats)
}
