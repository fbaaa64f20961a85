package saleshdl

import (
	"fmt"

	basehdl "sales_analytics/internal/api/base/handler"
	salesmodels "sales_analytics/internal/api/sales/models"
	salessvc "sales_analytics/internal/api/sales/service"
)

// SalesProductHandler xử lý các request đọc sản phẩm
type SalesProductHandler struct {
	basehdl.BaseHandler[salesmodels.SalesProduct]
}

// NewSalesProductHandler tạo mới SalesProductHandler
func NewSalesProductHandler() (*SalesProductHandler, error) {
	productService, err := salessvc.NewSalesProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales product service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[salesmodels.SalesProduct](productService)
	return &SalesProductHandler{
		BaseHandler: *baseHandler,
	}, nil
}
