// Package reviewhdl - Handler thị trường.
package reviewhdl

import (
	"fmt"

	basehdl "outlet_review/internal/api/base/handler"
	reviewsvc "outlet_review/internal/api/review/service"

	"github.com/gofiber/fiber/v3"
)

// MarketHandler xử lý các route market.
type MarketHandler struct {
	MarketSvc *reviewsvc.MarketService
}

// NewMarketHandler tạo MarketHandler mới.
func NewMarketHandler() (*MarketHandler, error) {
	svc, err := reviewsvc.NewMarketService()
	if err != nil {
		return nil, fmt.Errorf("tạo MarketService: %w", err)
	}
	return &MarketHandler{MarketSvc: svc}, nil
}

// HandleListMarkets xử lý GET /markets.
func (h *MarketHandler) HandleListMarkets(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.MarketSvc.ListAll(c.Context())
		basehdl.HandleResponse(c, items, err)
		return nil
	})
}
