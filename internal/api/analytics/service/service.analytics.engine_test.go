// Package analyticssvc - Test các phép tổng hợp doanh thu trên dataset giả lập.
package analyticssvc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/common"
	"sales_analytics/internal/utility"
)

// fakeDataset là OrderDataset trong bộ nhớ cho test
type fakeDataset struct {
	orders []salesmodels.SalesOrder
	err    error
}

func (d *fakeDataset) OrdersInRange(_ context.Context, startMs, endMs int64) ([]salesmodels.SalesOrder, error) {
	if d.err != nil {
		return nil, d.err
	}
	var out []salesmodels.SalesOrder
	for _, o := range d.orders {
		if o.DateOfSale >= startMs && o.DateOfSale <= endMs {
			out = append(out, o)
		}
	}
	return out, nil
}

func (d *fakeDataset) AllOrders(_ context.Context) ([]salesmodels.SalesOrder, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.orders, nil
}

// fakeCatalog là ProductCatalog trong bộ nhớ cho test
type fakeCatalog struct {
	products []salesmodels.SalesProduct
	err      error
}

func (c *fakeCatalog) AllProducts(_ context.Context) ([]salesmodels.SalesProduct, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.products, nil
}

func ms(t *testing.T, date string) int64 {
	t.Helper()
	v, err := utility.ParseDateToMs(date)
	if err != nil {
		t.Fatalf("không parse được ngày test %q: %v", date, err)
	}
	return v
}

func newTestService(orders []salesmodels.SalesOrder, products []salesmodels.SalesProduct) *RevenueAnalyticsService {
	return NewRevenueAnalyticsServiceWith(&fakeDataset{orders: orders}, &fakeCatalog{products: products})
}

// order tạo nhanh một đơn hàng test
func order(t *testing.T, id, productId, productName, region, date string, qty int, price float64) salesmodels.SalesOrder {
	t.Helper()
	return salesmodels.SalesOrder{
		OrderId:      id,
		ProductId:    productId,
		ProductName:  productName,
		Region:       region,
		QuantitySold: qty,
		UnitPrice:    price,
		DateOfSale:   ms(t, date),
	}
}

func TestTotalRevenue_EmptyRangeReturnsZero(t *testing.T) {
	s := newTestService(nil, nil)
	total, err := s.TotalRevenue(context.Background(), "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("khoảng ngày không có đơn phải trả về 0, không phải lỗi: %v", err)
	}
	if total != 0 {
		t.Errorf("tổng doanh thu khoảng rỗng phải là 0, nhận được %v", total)
	}
}

func TestTotalRevenue_WorkedExample(t *testing.T) {
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "A", "NA", "2024-03-10", 2, 180),
		order(t, "2", "P2", "B", "EU", "2024-03-20", 1, 1299),
	}
	s := newTestService(orders, nil)

	total, err := s.TotalRevenue(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("TotalRevenue lỗi: %v", err)
	}
	if total != 1659 {
		t.Errorf("tổng doanh thu phải là 2*180 + 1*1299 = 1659, nhận được %v", total)
	}
}

func TestTotalRevenue_MissingDatesValidationError(t *testing.T) {
	s := newTestService(nil, nil)
	cases := [][2]string{
		{"", "2024-03-31"},
		{"2024-03-01", ""},
		{"", ""},
		{"not-a-date", "2024-03-31"},
		{"2024-03-01", "31/03/2024"},
	}
	for _, c := range cases {
		_, err := s.TotalRevenue(context.Background(), c[0], c[1])
		if err == nil {
			t.Errorf("startDate=%q endDate=%q phải trả về ValidationError", c[0], c[1])
			continue
		}
		var customErr *common.Error
		if !errors.As(err, &customErr) || customErr.Code != common.ErrCodeValidationInput {
			t.Errorf("startDate=%q endDate=%q: lỗi phải là ValidationError, nhận được %v", c[0], c[1], err)
		}
	}
}

func TestTotalRevenue_Additivity(t *testing.T) {
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "A", "NA", "2024-01-10", 1, 100),
		order(t, "2", "P1", "A", "NA", "2024-02-15", 2, 50),
		order(t, "3", "P2", "B", "EU", "2024-03-20", 3, 10),
		order(t, "4", "P2", "B", "EU", "2024-04-05", 1, 999),
	}
	s := newTestService(orders, nil)
	ctx := context.Background()

	whole, err := s.TotalRevenue(ctx, "2024-01-01", "2024-04-30")
	if err != nil {
		t.Fatalf("TotalRevenue cả khoảng lỗi: %v", err)
	}

	first, err := s.TotalRevenue(ctx, "2024-01-01", "2024-02-29")
	if err != nil {
		t.Fatalf("TotalRevenue nửa đầu lỗi: %v", err)
	}
	second, err := s.TotalRevenue(ctx, "2024-03-01", "2024-04-30")
	if err != nil {
		t.Fatalf("TotalRevenue nửa sau lỗi: %v", err)
	}

	if first+second != whole {
		t.Errorf("tính cộng dồn theo phân hoạch sai: %v + %v != %v", first, second, whole)
	}
}

func TestRevenueByRegion_WorkedExample(t *testing.T) {
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "A", "NA", "2024-03-10", 2, 180),
		order(t, "2", "P2", "B", "EU", "2024-03-20", 1, 1299),
	}
	s := newTestService(orders, nil)

	buckets, err := s.RevenueByRegion(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("RevenueByRegion lỗi: %v", err)
	}
	got := map[string]float64{}
	for _, b := range buckets {
		got[b.Name] = b.Revenue
	}
	if got["NA"] != 360 {
		t.Errorf("doanh thu NA phải là 360, nhận được %v", got["NA"])
	}
	if got["EU"] != 1299 {
		t.Errorf("doanh thu EU phải là 1299, nhận được %v", got["EU"])
	}
}

func TestBucketSumsEqualTotal(t *testing.T) {
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "A", "NA", "2024-03-10", 2, 180),
		order(t, "2", "P2", "B", "EU", "2024-03-20", 1, 1299),
		order(t, "3", "P3", "C", "APAC", "2024-03-25", 5, 20),
	}
	products := []salesmodels.SalesProduct{
		{ProductId: "P1", Name: "A", Category: "Shoes"},
		{ProductId: "P2", Name: "B", Category: "Electronics"},
		// P3 cố ý không có trong catalog → bucket unknown
	}
	s := newTestService(orders, products)
	ctx := context.Background()

	total, err := s.TotalRevenue(ctx, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("TotalRevenue lỗi: %v", err)
	}

	byProduct, err := s.RevenueByProduct(ctx, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("RevenueByProduct lỗi: %v", err)
	}
	byCategory, err := s.RevenueByCategory(ctx, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("RevenueByCategory lỗi: %v", err)
	}
	byRegion, err := s.RevenueByRegion(ctx, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("RevenueByRegion lỗi: %v", err)
	}

	var productSum, categorySum, regionSum float64
	for _, b := range byProduct {
		productSum += b.Revenue
	}
	for _, b := range byCategory {
		categorySum += b.Revenue
	}
	for _, b := range byRegion {
		regionSum += b.Revenue
	}

	if productSum != total {
		t.Errorf("tổng các bucket theo sản phẩm (%v) phải bằng tổng doanh thu (%v)", productSum, total)
	}
	if categorySum != total {
		t.Errorf("tổng các bucket theo danh mục (%v) phải bằng tổng doanh thu (%v)", categorySum, total)
	}
	if regionSum != total {
		t.Errorf("tổng các bucket theo vùng (%v) phải bằng tổng doanh thu (%v)", regionSum, total)
	}
}

func TestRevenueByCategory_UnresolvedKeptInUnknownBucket(t *testing.T) {
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "A", "NA", "2024-03-10", 1, 100),
		order(t, "2", "P404", "Ghost", "NA", "2024-03-11", 1, 50),
	}
	products := []salesmodels.SalesProduct{
		{ProductId: "P1", Name: "A", Category: "Shoes"},
	}
	s := newTestService(orders, products)

	buckets, err := s.RevenueByCategory(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("RevenueByCategory lỗi: %v", err)
	}
	got := map[string]float64{}
	for _, b := range buckets {
		got[b.Name] = b.Revenue
	}
	if got[UnknownCategory] != 50 {
		t.Errorf("đơn không resolve được product phải vào bucket %q với doanh thu 50, nhận được %v", UnknownCategory, got[UnknownCategory])
	}
	if got["Shoes"] != 100 {
		t.Errorf("doanh thu Shoes phải là 100, nhận được %v", got["Shoes"])
	}
}

func TestRevenueByCategory_NumericVsStringIdStillJoins(t *testing.T) {
	// order giữ productId "123" (string), catalog cũng lưu "123" nhưng đi qua
	// chuẩn hóa string key — hai bên không được miss nhau
	orders := []salesmodels.SalesOrder{
		order(t, "1", "123", "A", "NA", "2024-03-10", 1, 100),
	}
	products := []salesmodels.SalesProduct{
		{ProductId: " 123 ", Name: "A", Category: "Toys"}, // id có khoảng trắng thừa
	}
	s := newTestService(orders, products)

	buckets, err := s.RevenueByCategory(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("RevenueByCategory lỗi: %v", err)
	}
	got := map[string]float64{}
	for _, b := range buckets {
		got[b.Name] = b.Revenue
	}
	if got["Toys"] != 100 {
		t.Errorf("join theo string key chuẩn hóa phải match, Toys=100, nhận được %v", got)
	}
}

func TestSalesByProduct_NameCollapsing(t *testing.T) {
	// hai product khác id nhưng trùng tên phải gộp chung một bucket
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "Same Name", "NA", "2024-03-10", 1, 100),
		order(t, "2", "P2", "Same Name", "EU", "2024-05-20", 2, 10),
	}
	s := newTestService(orders, nil)

	buckets, err := s.SalesByProduct(context.Background())
	if err != nil {
		t.Fatalf("SalesByProduct lỗi: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("hai product trùng tên phải gộp thành 1 bucket, nhận được %d", len(buckets))
	}
	if buckets[0].Name != "Same Name" || buckets[0].Revenue != 120 {
		t.Errorf("bucket gộp phải là {Same Name, 120}, nhận được %+v", buckets[0])
	}
}

func TestRevenueTrends_YearlySingleBucketEqualsTotal(t *testing.T) {
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "A", "NA", "2024-01-10", 1, 100),
		order(t, "2", "P2", "B", "EU", "2024-11-20", 2, 50),
	}
	s := newTestService(orders, nil)
	ctx := context.Background()

	buckets, err := s.RevenueTrends(ctx, "2024-01-01", "2024-12-31", "yearly")
	if err != nil {
		t.Fatalf("RevenueTrends lỗi: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("khoảng đúng 1 năm dương lịch phải tạo đúng 1 bucket, nhận được %d", len(buckets))
	}
	if buckets[0].Period != 2024 {
		t.Errorf("khóa bucket yearly phải là 2024, nhận được %d", buckets[0].Period)
	}

	total, err := s.TotalRevenue(ctx, "2024-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("TotalRevenue lỗi: %v", err)
	}
	if buckets[0].Revenue != total {
		t.Errorf("doanh thu bucket yearly (%v) phải bằng tổng doanh thu (%v)", buckets[0].Revenue, total)
	}
}

func TestRevenueTrends_MonthlyCollapsesYears(t *testing.T) {
	// hai đơn cùng tháng 3 nhưng khác năm phải gộp chung bucket 3
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "A", "NA", "2023-03-10", 1, 100),
		order(t, "2", "P2", "B", "EU", "2024-03-20", 1, 200),
	}
	s := newTestService(orders, nil)

	buckets, err := s.RevenueTrends(context.Background(), "2023-01-01", "2024-12-31", "monthly")
	if err != nil {
		t.Fatalf("RevenueTrends lỗi: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("monthly bỏ qua năm: hai đơn tháng 3 khác năm phải thành 1 bucket, nhận được %d", len(buckets))
	}
	if buckets[0].Period != 3 || buckets[0].Revenue != 300 {
		t.Errorf("bucket phải là {3, 300}, nhận được %+v", buckets[0])
	}
}

func TestRevenueTrends_SortedAscending(t *testing.T) {
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "A", "NA", "2024-09-10", 1, 10),
		order(t, "2", "P2", "B", "EU", "2024-01-20", 1, 20),
		order(t, "3", "P3", "C", "NA", "2024-05-05", 1, 30),
	}
	s := newTestService(orders, nil)

	buckets, err := s.RevenueTrends(context.Background(), "2024-01-01", "2024-12-31", "monthly")
	if err != nil {
		t.Fatalf("RevenueTrends lỗi: %v", err)
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i-1].Period >= buckets[i].Period {
			t.Errorf("bucket phải sort tăng dần theo khóa, nhận được %+v", buckets)
			break
		}
	}
}

func TestRevenueTrends_InvalidPeriodAlwaysValidationError(t *testing.T) {
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "A", "NA", "2024-03-10", 1, 100),
	}
	s := newTestService(orders, nil)

	for _, period := range []string{"weekly", "daily", "", "month", "x"} {
		_, err := s.RevenueTrends(context.Background(), "2024-01-01", "2024-12-31", period)
		if err == nil {
			t.Errorf("period=%q phải trả về ValidationError kể cả khi ngày hợp lệ", period)
			continue
		}
		var customErr *common.Error
		if !errors.As(err, &customErr) || customErr.Code != common.ErrCodeValidationInput {
			t.Errorf("period=%q: lỗi phải là ValidationError, nhận được %v", period, err)
		}
	}
}

func TestComputationError_WhenDatasetFails(t *testing.T) {
	s := NewRevenueAnalyticsServiceWith(
		&fakeDataset{err: fmt.Errorf("store unavailable")},
		&fakeCatalog{},
	)

	_, err := s.TotalRevenue(context.Background(), "2024-01-01", "2024-12-31")
	if err == nil {
		t.Fatal("dataset lỗi phải trả về ComputationError")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi phải là *common.Error, nhận được %T", err)
	}
	if customErr.Code != common.ErrCodeDatabaseQuery {
		t.Errorf("ComputationError phải mang code %s, nhận được %s", common.ErrCodeDatabaseQuery.Code, customErr.Code.Code)
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("ComputationError phải trả HTTP 400, nhận được %d", customErr.StatusCode)
	}
}

func TestDeterminism_RepeatedCallsIdentical(t *testing.T) {
	orders := []salesmodels.SalesOrder{
		order(t, "1", "P1", "B", "NA", "2024-03-10", 2, 180),
		order(t, "2", "P2", "A", "EU", "2024-03-20", 1, 1299),
		order(t, "3", "P3", "C", "NA", "2024-03-25", 5, 20),
	}
	s := newTestService(orders, nil)
	ctx := context.Background()

	first, err := s.RevenueByProduct(ctx, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("RevenueByProduct lỗi: %v", err)
	}
	second, err := s.RevenueByProduct(ctx, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("RevenueByProduct lần 2 lỗi: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("hai lần gọi cùng tham số phải trả kết quả giống nhau: %d vs %d bucket", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("bucket %d khác nhau giữa hai lần gọi: %+v vs %+v", i, first[i], second[i])
		}
	}
}
