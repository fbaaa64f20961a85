// Package router đăng ký các route thuộc domain Sales: orders/products/customers
// (read-only CRUD) và data pipeline (load-csv, generate-csv, refresh).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "sales_analytics/internal/api/router"
	saleshdl "sales_analytics/internal/api/sales/handler"
)

// Register đăng ký tất cả route Sales lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := saleshdl.NewSalesOrderHandler()
	if err != nil {
		return fmt.Errorf("create sales order handler: %w", err)
	}
	productHandler, err := saleshdl.NewSalesProductHandler()
	if err != nil {
		return fmt.Errorf("create sales product handler: %w", err)
	}
	customerHandler, err := saleshdl.NewSalesCustomerHandler()
	if err != nil {
		return fmt.Errorf("create sales customer handler: %w", err)
	}
	dataHandler, err := saleshdl.NewSalesDataHandler()
	if err != nil {
		return fmt.Errorf("create sales data handler: %w", err)
	}

	r.RegisterReadOnlyRoutes(v1, "/orders", orderHandler, apirouter.FullReadConfig)
	r.RegisterReadOnlyRoutes(v1, "/products", productHandler, apirouter.FullReadConfig)
	r.RegisterReadOnlyRoutes(v1, "/customers", customerHandler, apirouter.FullReadConfig)

	apirouter.RegisterRouteWithMiddleware(v1, "/data", "POST", "/load-csv", nil, dataHandler.HandleLoadCSV)
	apirouter.RegisterRouteWithMiddleware(v1, "/data", "GET", "/generate-csv", nil, dataHandler.HandleGenerateCSV)
	apirouter.RegisterRouteWithMiddleware(v1, "/data", "POST", "/refresh", nil, dataHandler.HandleRefresh)

	return nil
}
