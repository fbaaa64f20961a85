package saleshdl

import (
	"fmt"

	basehdl "sales_analytics/internal/api/base/handler"
	salessvc "sales_analytics/internal/api/sales/service"

	"github.com/gofiber/fiber/v3"
)

// SalesDataHandler xử lý các route data pipeline: import CSV, sinh CSV mẫu, refresh feed.
type SalesDataHandler struct {
	basehdl.BaseHandler[interface{}]
	csvService     *salessvc.SalesCSVService
	refreshService *salessvc.RefreshService
}

// NewSalesDataHandler tạo mới SalesDataHandler
func NewSalesDataHandler() (*SalesDataHandler, error) {
	csvService, err := salessvc.NewSalesCSVService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales csv service: %v", err)
	}
	refreshService, err := salessvc.NewRefreshService()
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh service: %v", err)
	}

	return &SalesDataHandler{
		csvService:     csvService,
		refreshService: refreshService,
	}, nil
}

// HandleLoadCSV import dữ liệu bán hàng từ file CSV đã cấu hình.
// @Router /data/load-csv [post]
func (h *SalesDataHandler) HandleLoadCSV(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		summary, err := h.csvService.ImportFromCSV(c.Context())
		h.HandleResponse(c, summary, err)
		return nil
	})
}

// HandleGenerateCSV sinh file CSV dữ liệu mẫu.
// @Router /data/generate-csv [get]
func (h *SalesDataHandler) HandleGenerateCSV(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.csvService.GenerateSampleCSV()
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleRefresh chạy ngay một lượt refresh dữ liệu từ feed.
// @Router /data/refresh [post]
func (h *SalesDataHandler) HandleRefresh(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		summary, err := h.refreshService.RefreshOnce(c.Context())
		h.HandleResponse(c, summary, err)
		return nil
	})
}
