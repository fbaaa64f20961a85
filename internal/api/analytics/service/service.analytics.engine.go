package analyticssvc

import (
	"context"
	"fmt"
	"sort"

	analyticsdto "sales_analytics/internal/api/analytics/dto"
	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/common"
	"sales_analytics/internal/logger"
	"sales_analytics/internal/utility"
)

// ============================================================
// Các hàm tính toán pure — không side effect, deterministic
// ============================================================

// OrderRevenue là đóng góp doanh thu của một đơn: quantitySold * unitPrice.
// Doanh thu GROSS: discount và shippingCost được lưu nhưng không trừ vào đây.
func OrderRevenue(o salesmodels.SalesOrder) float64 {
	return float64(o.QuantitySold) * o.UnitPrice
}

// SumRevenue tổng doanh thu của một tập đơn. Tập rỗng → 0.
func SumRevenue(orders []salesmodels.SalesOrder) float64 {
	var total float64
	for _, o := range orders {
		total += OrderRevenue(o)
	}
	return total
}

// GroupRevenue gộp doanh thu theo khóa nhóm do keyOf quyết định.
func GroupRevenue(orders []salesmodels.SalesOrder, keyOf func(salesmodels.SalesOrder) string) map[string]float64 {
	groups := make(map[string]float64)
	for _, o := range orders {
		groups[keyOf(o)] += OrderRevenue(o)
	}
	return groups
}

// SortedBuckets chuyển map nhóm doanh thu thành slice bucket, sort theo tên
// tăng dần để kết quả deterministic giữa các lần gọi.
func SortedBuckets(groups map[string]float64) []analyticsdto.RevenueBucket {
	buckets := make([]analyticsdto.RevenueBucket, 0, len(groups))
	for name, revenue := range groups {
		buckets = append(buckets, analyticsdto.RevenueBucket{Name: name, Revenue: revenue})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}

// TrendBucketsFor gộp doanh thu theo khóa thời gian của period,
// sort tăng dần theo khóa bucket.
func TrendBucketsFor(orders []salesmodels.SalesOrder, p Period) []analyticsdto.TrendBucket {
	groups := make(map[int]float64)
	for _, o := range orders {
		groups[p.BucketKey(o.DateOfSale)] += OrderRevenue(o)
	}

	buckets := make([]analyticsdto.TrendBucket, 0, len(groups))
	for key, revenue := range groups {
		buckets = append(buckets, analyticsdto.TrendBucket{Period: key, Revenue: revenue})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period < buckets[j].Period
	})
	return buckets
}

// ============================================================
// RevenueAnalyticsService — 6 operation tổng hợp doanh thu
// ============================================================

// RevenueAnalyticsService cung cấp các phép tổng hợp doanh thu trên tập đơn hàng.
// Stateless: các lần gọi độc lập, chạy song song không cần phối hợp.
type RevenueAnalyticsService struct {
	dataset OrderDataset
	catalog ProductCatalog
}

// NewRevenueAnalyticsService tạo service trên MongoDB store.
func NewRevenueAnalyticsService() (*RevenueAnalyticsService, error) {
	dataset, err := NewMongoOrderDataset()
	if err != nil {
		return nil, fmt.Errorf("failed to create order dataset: %v", err)
	}
	catalog, err := NewMongoProductCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to create product catalog: %v", err)
	}
	return &RevenueAnalyticsService{dataset: dataset, catalog: catalog}, nil
}

// NewRevenueAnalyticsServiceWith tạo service trên dataset/catalog tùy ý (dùng trong test).
func NewRevenueAnalyticsServiceWith(dataset OrderDataset, catalog ProductCatalog) *RevenueAnalyticsService {
	return &RevenueAnalyticsService{dataset: dataset, catalog: catalog}
}

// newValidationError lỗi tham số đầu vào — phát hiện trước khi chạm dữ liệu.
func newValidationError(message string) error {
	return common.NewError(common.ErrCodeValidationInput, message, common.StatusBadRequest, nil)
}

// newComputationError lỗi truy vấn/tổng hợp dữ liệu — log nguyên nhân gốc,
// trả message chung cho caller (không leak chi tiết hạ tầng).
func newComputationError(cause error) error {
	logger.GetErrorLogger().WithError(cause).Error("Analytics: lỗi truy vấn dữ liệu đơn hàng")
	return common.NewError(
		common.ErrCodeDatabaseQuery,
		"Không truy vấn được dữ liệu bán hàng",
		common.StatusBadRequest,
		nil,
	)
}

// parseDateRange validate và parse cặp startDate/endDate (ISO-8601, bắt buộc cả hai).
func parseDateRange(startDate, endDate string) (int64, int64, error) {
	if startDate == "" || endDate == "" {
		return 0, 0, newValidationError("startDate và endDate là bắt buộc")
	}
	startMs, err := utility.ParseDateToMs(startDate)
	if err != nil {
		return 0, 0, newValidationError(fmt.Sprintf("startDate không phải ngày hợp lệ: %s", startDate))
	}
	endMs, err := utility.ParseDateToMs(endDate)
	if err != nil {
		return 0, 0, newValidationError(fmt.Sprintf("endDate không phải ngày hợp lệ: %s", endDate))
	}
	return startMs, endMs, nil
}

// TotalRevenue tổng doanh thu trong [startDate, endDate]. Không có đơn nào match → 0.
func (s *RevenueAnalyticsService) TotalRevenue(ctx context.Context, startDate, endDate string) (float64, error) {
	startMs, endMs, err := parseDateRange(startDate, endDate)
	if err != nil {
		return 0, err
	}

	orders, err := s.dataset.OrdersInRange(ctx, startMs, endMs)
	if err != nil {
		return 0, newComputationError(err)
	}
	return SumRevenue(orders), nil
}

// SalesByProduct doanh thu theo tên sản phẩm trên TOÀN BỘ đơn hàng (không filter ngày).
// Khóa nhóm là productName cache trên đơn: hai product khác id trùng tên gộp chung bucket.
func (s *RevenueAnalyticsService) SalesByProduct(ctx context.Context) ([]analyticsdto.RevenueBucket, error) {
	orders, err := s.dataset.AllOrders(ctx)
	if err != nil {
		return nil, newComputationError(err)
	}
	groups := GroupRevenue(orders, func(o salesmodels.SalesOrder) string {
		return o.ProductName
	})
	return SortedBuckets(groups), nil
}

// RevenueByProduct doanh thu theo tên sản phẩm, filter theo khoảng ngày.
func (s *RevenueAnalyticsService) RevenueByProduct(ctx context.Context, startDate, endDate string) ([]analyticsdto.RevenueBucket, error) {
	startMs, endMs, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	orders, err := s.dataset.OrdersInRange(ctx, startMs, endMs)
	if err != nil {
		return nil, newComputationError(err)
	}
	groups := GroupRevenue(orders, func(o salesmodels.SalesOrder) string {
		return o.ProductName
	})
	return SortedBuckets(groups), nil
}

// RevenueByCategory doanh thu theo danh mục sản phẩm (join với catalog theo productId
// chuẩn hóa string). Đơn không resolve được product vẫn giữ lại trong bucket "unknown".
func (s *RevenueAnalyticsService) RevenueByCategory(ctx context.Context, startDate, endDate string) ([]analyticsdto.RevenueBucket, error) {
	startMs, endMs, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	orders, err := s.dataset.OrdersInRange(ctx, startMs, endMs)
	if err != nil {
		return nil, newComputationError(err)
	}

	resolver := NewCategoryResolver(s.catalog)
	index, err := resolver.BuildCategoryIndex(ctx)
	if err != nil {
		return nil, newComputationError(err)
	}

	groups := GroupRevenue(orders, func(o salesmodels.SalesOrder) string {
		return ResolveCategory(index, o)
	})
	return SortedBuckets(groups), nil
}

// RevenueByRegion doanh thu theo trường region lưu trên đơn (không join).
func (s *RevenueAnalyticsService) RevenueByRegion(ctx context.Context, startDate, endDate string) ([]analyticsdto.RevenueBucket, error) {
	startMs, endMs, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	orders, err := s.dataset.OrdersInRange(ctx, startMs, endMs)
	if err != nil {
		return nil, newComputationError(err)
	}
	groups := GroupRevenue(orders, func(o salesmodels.SalesOrder) string {
		return o.Region
	})
	return SortedBuckets(groups), nil
}

// RevenueTrends doanh thu theo bucket thời gian của period, sort tăng dần theo khóa.
// period ngoài {monthly, quarterly, yearly} → ValidationError, bất kể ngày hợp lệ.
func (s *RevenueAnalyticsService) RevenueTrends(ctx context.Context, startDate, endDate, period string) ([]analyticsdto.TrendBucket, error) {
	startMs, endMs, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	p, ok := ParsePeriod(period)
	if !ok {
		return nil, newValidationError("period không hợp lệ (cho phép: monthly, quarterly, yearly)")
	}

	orders, err := s.dataset.OrdersInRange(ctx, startMs, endMs)
	if err != nil {
		return nil, newComputationError(err)
	}
	return TrendBucketsFor(orders, p), nil
}
