// Package router đăng ký các route thuộc domain review: suggestions, markets, dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reviewhdl "outlet_review/internal/api/review/handler"
	apirouter "outlet_review/internal/api/router"
)

// Register đăng ký tất cả route review lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	suggestionHandler, err := reviewhdl.NewSuggestionHandler()
	if err != nil {
		return fmt.Errorf("tạo SuggestionHandler: %w", err)
	}
	marketHandler, err := reviewhdl.NewMarketHandler()
	if err != nil {
		return fmt.Errorf("tạo MarketHandler: %w", err)
	}
	dashboardHandler, err := reviewhdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("tạo DashboardHandler: %w", err)
	}

	// Chưa có middleware riêng cho domain review (auth nằm ở gateway phía trước)
	var middlewares []fiber.Handler

	// GET /suggestions — danh sách có lọc. Query: status, matchCategory, market, q, page, limit
	apirouter.RegisterRouteWithMiddleware(v1, "/suggestions", "GET", "/", middlewares, suggestionHandler.HandleListSuggestions)

	// POST /suggestions/bulk-status — đổi trạng thái hàng loạt. Body: suggestionIds, status
	apirouter.RegisterRouteWithMiddleware(v1, "/suggestions", "POST", "/bulk-status", middlewares, suggestionHandler.HandleBulkStatus)

	// GET /suggestions/:suggestionId
	apirouter.RegisterRouteWithMiddleware(v1, "/suggestions", "GET", "/:suggestionId", middlewares, suggestionHandler.HandleGetSuggestion)

	// PATCH /suggestions/:suggestionId/status — đổi trạng thái. Body: status
	apirouter.RegisterRouteWithMiddleware(v1, "/suggestions", "PATCH", "/:suggestionId/status", middlewares, suggestionHandler.HandleUpdateStatus)

	// POST /suggestions/:suggestionId/comments
	apirouter.RegisterRouteWithMiddleware(v1, "/suggestions", "POST", "/:suggestionId/comments", middlewares, suggestionHandler.HandleAddComment)
	// GET /suggestions/:suggestionId/comments
	apirouter.RegisterRouteWithMiddleware(v1, "/suggestions", "GET", "/:suggestionId/comments", middlewares, suggestionHandler.HandleListComments)

	// POST /suggestions/:suggestionId/resuggest — yêu cầu match lại. Body: reason, comment
	apirouter.RegisterRouteWithMiddleware(v1, "/suggestions", "POST", "/:suggestionId/resuggest", middlewares, suggestionHandler.HandleResuggest)

	// GET /suggestions/:suggestionId/alternatives — gợi ý thay thế cùng market. Query: q, limit
	apirouter.RegisterRouteWithMiddleware(v1, "/suggestions", "GET", "/:suggestionId/alternatives", middlewares, suggestionHandler.HandleAlternatives)

	// GET /suggestions/:suggestionId/events — lịch sử thao tác review. Query: limit
	apirouter.RegisterRouteWithMiddleware(v1, "/suggestions", "GET", "/:suggestionId/events", middlewares, suggestionHandler.HandleListEvents)

	// GET /markets
	apirouter.RegisterRouteWithMiddleware(v1, "/markets", "GET", "/", middlewares, marketHandler.HandleListMarkets)

	// GET /dashboard/metrics — thống kê đầy đủ (DQ, feedback, market breakdown, timeline)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/metrics", middlewares, dashboardHandler.HandleMetrics)
	// GET /dashboard/overview — đếm nhanh theo trạng thái
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/overview", middlewares, dashboardHandler.HandleOverview)

	return nil
}
