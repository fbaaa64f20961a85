// Package router đăng ký các route thuộc domain Analytics: 6 báo cáo doanh thu.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "sales_analytics/internal/api/analytics/handler"
	apirouter "sales_analytics/internal/api/router"
)

// Register đăng ký tất cả route Analytics lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	revenueHandler, err := analyticshdl.NewRevenueAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("create revenue analytics handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/total-revenue", nil, revenueHandler.HandleTotalRevenue)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/sales-by-product", nil, revenueHandler.HandleSalesByProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/revenue-by-product", nil, revenueHandler.HandleRevenueByProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/revenue-by-category", nil, revenueHandler.HandleRevenueByCategory)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/revenue-by-region", nil, revenueHandler.HandleRevenueByRegion)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/revenue-trends", nil, revenueHandler.HandleRevenueTrends)

	return nil
}
