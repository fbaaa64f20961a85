package basehdl

import (
	"fmt"
	"strconv"

	"sales_analytics/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// HandleFindOne tìm một document theo filter từ query string.
//
// Query parameters:
// - filter: JSON string chứa điều kiện tìm kiếm
// - options: JSON string chứa MongoDB options (projection, sort)
func (h *BaseHandler[T]) HandleFindOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		rawOpts, err := h.processMongoOptions(c, true)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		opts, _ := rawOpts.(*mongoopts.FindOneOptions)

		data, err := h.BaseService.FindOne(c.Context(), filter, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindOneById tìm một document theo MongoDB ObjectID từ URL params.
//
// URL params:
// - id: ObjectID của document cần tìm
func (h *BaseHandler[T]) HandleFindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idStr := c.Params("id")
		if idStr == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu ID trong request",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		id, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID không đúng định dạng ObjectID: %s", idStr),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFind tìm danh sách documents theo filter từ query string.
//
// Query parameters:
// - filter: JSON string chứa điều kiện tìm kiếm
// - options: JSON string chứa MongoDB options (projection, sort, limit, skip)
func (h *BaseHandler[T]) HandleFind(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		rawOpts, err := h.processMongoOptions(c, false)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		opts, _ := rawOpts.(*mongoopts.FindOptions)

		data, err := h.BaseService.Find(c.Context(), filter, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindWithPagination tìm danh sách documents có phân trang.
//
// Query parameters:
// - filter: JSON string chứa điều kiện tìm kiếm
// - page: Số trang (mặc định 1)
// - limit: Số lượng document mỗi trang (mặc định 10, tối đa 100)
func (h *BaseHandler[T]) HandleFindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)

		data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCount đếm số lượng documents theo filter.
//
// Query parameters:
// - filter: JSON string chứa điều kiện tìm kiếm
func (h *BaseHandler[T]) HandleCount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"count": count}, err)
		return nil
	})
}

// HandleDistinct lấy danh sách giá trị duy nhất của một trường.
//
// URL params:
// - field: Tên trường cần lấy giá trị duy nhất
//
// Query parameters:
// - filter: JSON string chứa điều kiện tìm kiếm
func (h *BaseHandler[T]) HandleDistinct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		field := c.Params("field")
		if field == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tên trường trong request",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if contains(h.filterOptions.DeniedFields, field) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép truy vấn vì lý do bảo mật", field),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		values, err := h.BaseService.Distinct(c.Context(), field, filter)
		h.HandleResponse(c, values, err)
		return nil
	})
}

// HandleExists kiểm tra document có tồn tại theo filter hay không.
//
// Query parameters:
// - filter: JSON string chứa điều kiện tìm kiếm
func (h *BaseHandler[T]) HandleExists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		exists, err := h.BaseService.DocumentExists(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"exists": exists}, err)
		return nil
	})
}

// ParsePagination đọc thông tin phân trang từ query string.
// Trả về page (mặc định 1) và limit (mặc định 10, tối đa 100).
func (h *BaseHandler[T]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page := int64(1)
	limit := int64(10)

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.ParseInt(pageStr, 10, 64); err == nil && p > 0 {
			page = p
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil && l > 0 {
			limit = l
		}
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}
