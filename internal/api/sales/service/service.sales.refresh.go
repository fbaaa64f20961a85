package salessvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	salesdto "sales_analytics/internal/api/sales/dto"
	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/common"
	"sales_analytics/internal/global"
	"sales_analytics/internal/logger"
	"sales_analytics/internal/utility"
)

// RefreshService đồng bộ dữ liệu bán hàng từ feed ngoài vào database.
// Stateless: mỗi lần RefreshOnce là một lần chạy độc lập; lịch chạy định kỳ
// do worker bên ngoài sở hữu, service này không giữ timer.
type RefreshService struct {
	orderService    *SalesOrderService
	productService  *SalesProductService
	customerService *SalesCustomerService
	feedURL         string
	httpClient      *http.Client
}

// NewRefreshService tạo mới RefreshService
func NewRefreshService() (*RefreshService, error) {
	orderService, err := NewSalesOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales order service: %v", err)
	}
	productService, err := NewSalesProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales product service: %v", err)
	}
	customerService, err := NewSalesCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales customer service: %v", err)
	}

	feedURL := ""
	if global.MongoDB_ServerConfig != nil {
		feedURL = global.MongoDB_ServerConfig.FeedURL
	}

	return &RefreshService{
		orderService:    orderService,
		productService:  productService,
		customerService: customerService,
		feedURL:         feedURL,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// sampleFeedRecords là dữ liệu feed mẫu dùng khi chưa cấu hình FEED_URL.
func sampleFeedRecords() []salesdto.SalesRecord {
	return []salesdto.SalesRecord{
		{
			OrderId: "1001", ProductId: "P123", CustomerId: "C456",
			ProductName: "UltraBoost Running Shoes", Category: "Footwear", Region: "North America",
			DateOfSale: "2025-04-18", QuantitySold: 2, UnitPrice: 180.0,
			Discount: 0.1, ShippingCost: 5.0, PaymentMethod: "Credit Card",
			CustomerName: "Alice Smith", CustomerEmail: "alice@example.com",
			CustomerAddress:    "123 Main St, Springfield",
			ProductDescription: "High-performance running shoes with Boost cushioning.",
		},
		{
			OrderId: "1002", ProductId: "P456", CustomerId: "C789",
			ProductName: "iPhone 15 Pro", Category: "Electronics", Region: "Europe",
			DateOfSale: "2025-04-17", QuantitySold: 1, UnitPrice: 1299.0,
			Discount: 0, ShippingCost: 15.0, PaymentMethod: "PayPal",
			CustomerName: "Bob Johnson", CustomerEmail: "bob@example.com",
			CustomerAddress:    "456 Oak Ave, Metropolis",
			ProductDescription: "Latest Apple flagship with A17 chip and 120Hz display.",
		},
	}
}

// FetchFeed lấy danh sách bản ghi từ feed ngoài.
// FEED_URL rỗng → trả về dữ liệu mẫu (chế độ phát triển / demo).
func (s *RefreshService) FetchFeed(ctx context.Context) ([]salesdto.SalesRecord, error) {
	if s.feedURL == "" {
		return sampleFeedRecords(), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			fmt.Sprintf("Không gọi được feed dữ liệu: %s", s.feedURL),
			common.StatusServiceUnavailable,
			err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Feed trả về status %d", resp.StatusCode),
			common.StatusServiceUnavailable,
			nil,
		)
	}

	var records []salesdto.SalesRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Feed trả về JSON không đúng định dạng",
			common.StatusBadRequest,
			err,
		)
	}
	return records, nil
}

// customerChanged so sánh các trường customer mà feed có thể thay đổi.
func customerChanged(existing salesmodels.SalesCustomer, rec salesdto.SalesRecord) bool {
	return existing.Name != rec.CustomerName ||
		existing.Email != rec.CustomerEmail ||
		existing.Address != rec.CustomerAddress
}

// productChanged so sánh các trường product mà feed có thể thay đổi.
func productChanged(existing salesmodels.SalesProduct, rec salesdto.SalesRecord) bool {
	return existing.Name != rec.ProductName ||
		existing.UnitPrice != rec.UnitPrice ||
		(rec.Category != "" && existing.Category != rec.Category)
}

// orderChanged so sánh các trường order mà feed có thể thay đổi.
func orderChanged(existing salesmodels.SalesOrder, rec salesdto.SalesRecord) bool {
	dateMs, _ := utility.ParseDateToMs(rec.DateOfSale)
	return existing.QuantitySold != rec.QuantitySold ||
		existing.UnitPrice != rec.UnitPrice ||
		existing.Discount != rec.Discount ||
		existing.ShippingCost != rec.ShippingCost ||
		existing.DateOfSale != dateMs
}

// refreshOutcome kết quả ghi một entity trong một lần refresh.
type refreshOutcome int

const (
	outcomeInserted refreshOutcome = iota
	outcomeUpdated
	outcomeUnchanged
)

// refreshCustomer insert customer mới hoặc update nếu dữ liệu thay đổi.
func (s *RefreshService) refreshCustomer(ctx context.Context, rec salesdto.SalesRecord) (refreshOutcome, error) {
	filter := map[string]interface{}{"customerId": rec.CustomerId}
	existing, err := s.customerService.FindOne(ctx, filter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			if _, insErr := s.customerService.InsertOne(ctx, recordToCustomer(rec)); insErr != nil {
				return outcomeUnchanged, insErr
			}
			return outcomeInserted, nil
		}
		return outcomeUnchanged, err
	}

	if !customerChanged(existing, rec) {
		return outcomeUnchanged, nil
	}
	update := map[string]interface{}{"$set": map[string]interface{}{
		"name":    rec.CustomerName,
		"email":   rec.CustomerEmail,
		"address": rec.CustomerAddress,
	}}
	if _, err := s.customerService.UpdateOne(ctx, filter, update, nil); err != nil {
		return outcomeUnchanged, err
	}
	return outcomeUpdated, nil
}

// refreshProduct insert product mới hoặc update nếu dữ liệu thay đổi.
func (s *RefreshService) refreshProduct(ctx context.Context, rec salesdto.SalesRecord) (refreshOutcome, error) {
	filter := map[string]interface{}{"productId": rec.ProductId}
	existing, err := s.productService.FindOne(ctx, filter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			if _, insErr := s.productService.InsertOne(ctx, recordToProduct(rec)); insErr != nil {
				return outcomeUnchanged, insErr
			}
			return outcomeInserted, nil
		}
		return outcomeUnchanged, err
	}

	if !productChanged(existing, rec) {
		return outcomeUnchanged, nil
	}
	set := map[string]interface{}{
		"name":      rec.ProductName,
		"unitPrice": rec.UnitPrice,
	}
	if rec.Category != "" {
		set["category"] = rec.Category
	}
	if _, err := s.productService.UpdateOne(ctx, filter, map[string]interface{}{"$set": set}, nil); err != nil {
		return outcomeUnchanged, err
	}
	return outcomeUpdated, nil
}

// refreshOrder insert order mới hoặc update nếu dữ liệu thay đổi.
func (s *RefreshService) refreshOrder(ctx context.Context, rec salesdto.SalesRecord) (refreshOutcome, error) {
	filter := map[string]interface{}{"orderId": rec.OrderId}
	existing, err := s.orderService.FindOne(ctx, filter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			if _, insErr := s.orderService.InsertOne(ctx, recordToOrder(rec)); insErr != nil {
				return outcomeUnchanged, insErr
			}
			return outcomeInserted, nil
		}
		return outcomeUnchanged, err
	}

	if !orderChanged(existing, rec) {
		return outcomeUnchanged, nil
	}
	order := recordToOrder(rec)
	update := map[string]interface{}{"$set": map[string]interface{}{
		"customerId":    order.CustomerId,
		"productId":     order.ProductId,
		"productName":   order.ProductName,
		"quantitySold":  order.QuantitySold,
		"unitPrice":     order.UnitPrice,
		"discount":      order.Discount,
		"shippingCost":  order.ShippingCost,
		"paymentMethod": order.PaymentMethod,
		"dateOfSale":    order.DateOfSale,
		"region":        order.Region,
	}}
	if _, err := s.orderService.UpdateOne(ctx, filter, update, nil); err != nil {
		return outcomeUnchanged, err
	}
	return outcomeUpdated, nil
}

// RefreshOnce chạy một lượt refresh: fetch feed rồi upsert từng bản ghi
// (chỉ update khi dữ liệu thực sự thay đổi). Bản ghi không hợp lệ bị bỏ qua và log.
func (s *RefreshService) RefreshOnce(ctx context.Context) (*salesdto.RefreshSummary, error) {
	log := logger.GetAppLogger()
	startedAt := time.Now()

	log.Info("Bắt đầu refresh dữ liệu bán hàng từ feed")

	records, err := s.FetchFeed(ctx)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("Refresh: không lấy được dữ liệu từ feed")
		return nil, err
	}

	summary := &salesdto.RefreshSummary{FetchedRecords: len(records)}

	for _, rec := range records {
		if errs := ValidateRecord(rec); len(errs) > 0 {
			summary.Failed++
			log.WithField("orderId", rec.OrderId).Warnf("Bỏ qua bản ghi feed không hợp lệ: %v", errs)
			continue
		}

		outcomes := make([]refreshOutcome, 0, 3)
		failed := false
		for _, fn := range []func(context.Context, salesdto.SalesRecord) (refreshOutcome, error){
			s.refreshCustomer, s.refreshProduct, s.refreshOrder,
		} {
			outcome, err := fn(ctx, rec)
			if err != nil {
				summary.Failed++
				logger.GetErrorLogger().WithError(err).WithField("orderId", rec.OrderId).Error("Refresh: lỗi khi ghi bản ghi")
				failed = true
				break
			}
			outcomes = append(outcomes, outcome)
		}
		if failed {
			continue
		}

		// Phân loại theo outcome của order (entity chính của bản ghi)
		switch outcomes[2] {
		case outcomeInserted:
			summary.Inserted++
		case outcomeUpdated:
			summary.Updated++
		default:
			summary.Unchanged++
		}
	}

	summary.DurationMs = time.Since(startedAt).Milliseconds()
	log.WithFields(map[string]interface{}{
		"fetched":   summary.FetchedRecords,
		"inserted":  summary.Inserted,
		"updated":   summary.Updated,
		"unchanged": summary.Unchanged,
		"failed":    summary.Failed,
	}).Info("Refresh dữ liệu hoàn tất")

	return summary, nil
}
