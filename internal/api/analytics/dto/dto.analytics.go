// Package analyticsdto chứa các cấu trúc dữ liệu vào/ra cho domain Analytics.
package analyticsdto

// Envelope là vỏ response thống nhất của các route analytics.
// Success quyết định HTTP status ở handler: true → 200, false → 400.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// RevenueBucket là một nhóm doanh thu theo tên (sản phẩm / danh mục / vùng).
type RevenueBucket struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// TrendBucket là một nhóm doanh thu theo khóa thời gian
// (tháng 1-12, quý 1-4 hoặc năm, tùy period).
type TrendBucket struct {
	Period  int     `json:"period"`
	Revenue float64 `json:"revenue"`
}

// TotalRevenueResult kết quả tổng doanh thu trong khoảng ngày.
type TotalRevenueResult struct {
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	TotalRevenue float64 `json:"totalRevenue"`
}
