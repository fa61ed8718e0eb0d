package handler

import (
	"time"

	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// rangeDays maps the UI range selector onto a day count.
var rangeDays = map[string]int{
	"7d":  7,
	"1m":  30,
	"3m":  90,
	"6m":  180,
	"12m": 365,
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, stats)
}

func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	rangeParam := c.Query("range", "1m")
	days, known := rangeDays[rangeParam]
	if !known {
		return validationFail(c, map[string]string{"range": "must be one of 7d, 1m, 3m, 6m, 12m"})
	}

	movement, err := h.service.GetStockMovement(days)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, movement)
}

func (h *DashboardHandler) GetFinancialSummary(c *fiber.Ctx) error {
	rangeParam := c.Query("range", "1m")
	days, known := rangeDays[rangeParam]
	if !known {
		return validationFail(c, map[string]string{"range": "must be one of 7d, 1m, 3m, 6m, 12m"})
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)
	summary, err := h.service.GetFinancialSummary(startDate, endDate)
	if err != nil {
		return handleServiceError(c, err)
	}
	return ok(c, summary)
}
