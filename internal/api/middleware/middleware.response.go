// Package middleware chứa phần xử lý response lỗi dùng ở tầng app (ErrorHandler),
// tách khỏi handler package để tầng khởi tạo fiber dùng được mà không kéo theo handler.
package middleware

import (
	"errors"

	basehdl "sales_analytics/internal/api/base/handler"
	"sales_analytics/internal/common"

	"github.com/gofiber/fiber/v3"
)

// HandleErrorResponse xử lý và trả về error response cho client theo envelope chung.
// Lỗi *common.Error giữ nguyên status code và mã lỗi của nó; lỗi khác trả về 500.
func HandleErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return basehdl.JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
	}
	return basehdl.JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeDatabase.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
