// Package router đăng ký các route hệ thống: health check.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "outlet_review/internal/api/base/handler"
	apirouter "outlet_review/internal/api/router"
)

// Register đăng ký các route system lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("tạo SystemHandler: %w", err)
	}

	// GET /system/health
	apirouter.RegisterRouteWithMiddleware(v1, "/system", "GET", "/health", nil, systemHandler.HandleHealth)

	return nil
}
