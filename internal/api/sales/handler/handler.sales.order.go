// Package saleshdl chứa HTTP handler cho domain Sales (orders, products, customers, data pipeline).
package saleshdl

import (
	"fmt"

	basehdl "sales_analytics/internal/api/base/handler"
	salesmodels "sales_analytics/internal/api/sales/models"
	salessvc "sales_analytics/internal/api/sales/service"
)

// SalesOrderHandler xử lý các request đọc đơn hàng
type SalesOrderHandler struct {
	basehdl.BaseHandler[salesmodels.SalesOrder]
}

// NewSalesOrderHandler tạo mới SalesOrderHandler
func NewSalesOrderHandler() (*SalesOrderHandler, error) {
	orderService, err := salessvc.NewSalesOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales order service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[salesmodels.SalesOrder](orderService)
	return &SalesOrderHandler{
		BaseHandler: *baseHandler,
	}, nil
}
