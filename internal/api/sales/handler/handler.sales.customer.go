package saleshdl

import (
	"fmt"

	basehdl "sales_analytics/internal/api/base/handler"
	salesmodels "sales_analytics/internal/api/sales/models"
	salessvc "sales_analytics/internal/api/sales/service"
)

// SalesCustomerHandler xử lý các request đọc khách hàng
type SalesCustomerHandler struct {
	basehdl.BaseHandler[salesmodels.SalesCustomer]
}

// NewSalesCustomerHandler tạo mới SalesCustomerHandler
func NewSalesCustomerHandler() (*SalesCustomerHandler, error) {
	customerService, err := salessvc.NewSalesCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales customer service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[salesmodels.SalesCustomer](customerService)
	return &SalesCustomerHandler{
		BaseHandler: *baseHandler,
	}, nil
}
