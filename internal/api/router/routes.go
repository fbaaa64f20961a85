package router

import (
	"github.com/gofiber/fiber/v3"
)

// ReadOnlyHandler định nghĩa interface cho các handler chỉ đọc dữ liệu
type ReadOnlyHandler interface {
	HandleFind(c fiber.Ctx) error
	HandleFindOne(c fiber.Ctx) error
	HandleFindOneById(c fiber.Ctx) error
	HandleFindWithPagination(c fiber.Ctx) error
	HandleCount(c fiber.Ctx) error
	HandleDistinct(c fiber.Ctx) error
	HandleExists(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// ReadOnlyConfig cấu hình các operation đọc được phép cho mỗi collection
type ReadOnlyConfig struct {
	Find     bool // Find All
	FindOne  bool // Find One
	FindById bool // Find By Id
	Paginate bool // Find With Pagination
	Count    bool // Count Documents
	Distinct bool // Distinct
	Exists   bool // Document Exists
}

// FullReadConfig cho phép đầy đủ các operation đọc.
var FullReadConfig = ReadOnlyConfig{
	Find: true, FindOne: true, FindById: true,
	Paginate: true,
	Count:    true, Distinct: true, Exists: true,
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method.
//
// Lưu ý: với Fiber v3 KHÔNG truyền middleware trực tiếp vào router.Get(path, mw, handler),
// middleware sẽ không được gọi. Phải tạo group rồi .Use() từng middleware.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware sẽ chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterReadOnlyRoutes đăng ký các route đọc dữ liệu cho một collection. Dùng từ domain router.
func (r *Router) RegisterReadOnlyRoutes(router fiber.Router, prefix string, h ReadOnlyHandler, config ReadOnlyConfig) {
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find", nil, h.HandleFind)
	}
	if config.FindOne {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-one", nil, h.HandleFindOne)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", nil, h.HandleFindOneById)
	}
	if config.Paginate {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/find-with-pagination", nil, h.HandleFindWithPagination)
	}
	if config.Count {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/count", nil, h.HandleCount)
	}
	if config.Distinct {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/distinct/:field", nil, h.HandleDistinct)
	}
	if config.Exists {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/exists", nil, h.HandleExists)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
