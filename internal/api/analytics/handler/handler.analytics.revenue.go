// Package analyticshdl chứa HTTP handler cho domain Analytics.
// Khác với CRUD envelope chung, các route analytics dùng vỏ response riêng
// {success, data, message}: success=true → 200, success=false → 400
// (ValidationError và ComputationError cùng trả 400, caller phân biệt qua message).
package analyticshdl

import (
	"errors"
	"fmt"

	analyticsdto "sales_analytics/internal/api/analytics/dto"
	analyticssvc "sales_analytics/internal/api/analytics/service"
	basehdl "sales_analytics/internal/api/base/handler"
	"sales_analytics/internal/common"

	"github.com/gofiber/fiber/v3"
)

// RevenueAnalyticsHandler xử lý 6 route tổng hợp doanh thu
type RevenueAnalyticsHandler struct {
	service *analyticssvc.RevenueAnalyticsService
}

// NewRevenueAnalyticsHandler tạo mới RevenueAnalyticsHandler
func NewRevenueAnalyticsHandler() (*RevenueAnalyticsHandler, error) {
	service, err := analyticssvc.NewRevenueAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create revenue analytics service: %v", err)
	}
	return &RevenueAnalyticsHandler{service: service}, nil
}

// respond trả về envelope analytics: 200 khi thành công, 400 khi lỗi.
func (h *RevenueAnalyticsHandler) respond(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		message := err.Error()
		var customErr *common.Error
		if errors.As(err, &customErr) {
			message = customErr.Message
		}
		return basehdl.JSONResponse(c, common.StatusBadRequest, analyticsdto.Envelope{
			Success: false,
			Data:    nil,
			Message: message,
		})
	}
	return basehdl.JSONResponse(c, common.StatusOK, analyticsdto.Envelope{
		Success: true,
		Data:    data,
		Message: "",
	})
}

// HandleTotalRevenue tổng doanh thu trong khoảng ngày.
// @Router /analytics/total-revenue [get]
func (h *RevenueAnalyticsHandler) HandleTotalRevenue(c fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	total, err := h.service.TotalRevenue(c.Context(), startDate, endDate)
	if err != nil {
		return h.respond(c, nil, err)
	}
	return h.respond(c, analyticsdto.TotalRevenueResult{
		StartDate:    startDate,
		EndDate:      endDate,
		TotalRevenue: total,
	}, nil)
}

// HandleSalesByProduct doanh thu theo tên sản phẩm trên toàn bộ đơn hàng.
// @Router /analytics/sales-by-product [get]
func (h *RevenueAnalyticsHandler) HandleSalesByProduct(c fiber.Ctx) error {
	buckets, err := h.service.SalesByProduct(c.Context())
	return h.respond(c, buckets, err)
}

// HandleRevenueByProduct doanh thu theo tên sản phẩm trong khoảng ngày.
// @Router /analytics/revenue-by-product [get]
func (h *RevenueAnalyticsHandler) HandleRevenueByProduct(c fiber.Ctx) error {
	buckets, err := h.service.RevenueByProduct(c.Context(), c.Query("startDate"), c.Query("endDate"))
	return h.respond(c, buckets, err)
}

// HandleRevenueByCategory doanh thu theo danh mục sản phẩm trong khoảng ngày.
// @Router /analytics/revenue-by-category [get]
func (h *RevenueAnalyticsHandler) HandleRevenueByCategory(c fiber.Ctx) error {
	buckets, err := h.service.RevenueByCategory(c.Context(), c.Query("startDate"), c.Query("endDate"))
	return h.respond(c, buckets, err)
}

// HandleRevenueByRegion doanh thu theo vùng trong khoảng ngày.
// @Router /analytics/revenue-by-region [get]
func (h *RevenueAnalyticsHandler) HandleRevenueByRegion(c fiber.Ctx) error {
	buckets, err := h.service.RevenueByRegion(c.Context(), c.Query("startDate"), c.Query("endDate"))
	return h.respond(c, buckets, err)
}

// HandleRevenueTrends doanh thu theo bucket thời gian (monthly/quarterly/yearly).
// @Router /analytics/revenue-trends [get]
func (h *RevenueAnalyticsHandler) HandleRevenueTrends(c fiber.Ctx) error {
	buckets, err := h.service.RevenueTrends(c.Context(), c.Query("startDate"), c.Query("endDate"), c.Query("period"))
	return h.respond(c, buckets, err)
}
