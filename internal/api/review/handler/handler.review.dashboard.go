// Package reviewhdl - Handler thống kê dashboard.
package reviewhdl

import (
	"fmt"

	basehdl "outlet_review/internal/api/base/handler"
	reviewsvc "outlet_review/internal/api/review/service"

	"github.com/gofiber/fiber/v3"
)

// DashboardHandler xử lý các route dashboard.
type DashboardHandler struct {
	DashboardSvc *reviewsvc.DashboardService
}

// NewDashboardHandler tạo DashboardHandler mới.
func NewDashboardHandler() (*DashboardHandler, error) {
	svc, err := reviewsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("tạo DashboardService: %w", err)
	}
	return &DashboardHandler{DashboardSvc: svc}, nil
}

// HandleMetrics xử lý GET /dashboard/metrics.
func (h *DashboardHandler) HandleMetrics(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		metrics, err := h.DashboardSvc.Metrics(c.Context())
		basehdl.HandleResponse(c, metrics, err)
		return nil
	})
}

// HandleOverview xử lý GET /dashboard/overview.
func (h *DashboardHandler) HandleOverview(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		overview, err := h.DashboardSvc.Overview(c.Context())
		basehdl.HandleResponse(c, overview, err)
		return nil
	})
}
