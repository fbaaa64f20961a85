package salessvc

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	salesdto "sales_analytics/internal/api/sales/dto"
	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/common"
	"sales_analytics/internal/global"
	"sales_analytics/internal/logger"
	"sales_analytics/internal/utility"
)

// Cột của file CSV bán hàng (giữ nguyên tên cột của nguồn dữ liệu gốc).
var salesCSVHeader = []string{
	"Order ID", "Product ID", "Customer ID", "Product Name", "Category",
	"Region", "Date of Sale", "Quantity Sold", "Unit Price", "Discount",
	"Shipping Cost", "Payment Method", "Customer Name", "Customer Email",
	"Customer Address", "Customer Age", "Gender", "Product Description",
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SalesCSVService xử lý import/export dữ liệu bán hàng qua file CSV.
type SalesCSVService struct {
	orderService    *SalesOrderService
	productService  *SalesProductService
	customerService *SalesCustomerService
	csvPath         string
}

// NewSalesCSVService tạo mới SalesCSVService
func NewSalesCSVService() (*SalesCSVService, error) {
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

	csvPath := "salesData.csv"
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.SalesCSVPath != "" {
		csvPath = global.MongoDB_ServerConfig.SalesCSVPath
	}

	return &SalesCSVService{
		orderService:    orderService,
		productService:  productService,
		customerService: customerService,
		csvPath:         csvPath,
	}, nil
}

// ValidateRecord kiểm tra một bản ghi bán hàng, trả về danh sách lỗi (rỗng = hợp lệ).
func ValidateRecord(rec salesdto.SalesRecord) []string {
	var errs []string

	if strings.TrimSpace(rec.OrderId) == "" {
		errs = append(errs, "Order ID là bắt buộc")
	}
	if strings.TrimSpace(rec.ProductId) == "" {
		errs = append(errs, "Product ID là bắt buộc")
	}
	if strings.TrimSpace(rec.CustomerId) == "" {
		errs = append(errs, "Customer ID là bắt buộc")
	}
	if strings.TrimSpace(rec.ProductName) == "" {
		errs = append(errs, "Product Name là bắt buộc")
	}
	if _, err := utility.ParseDateToMs(rec.DateOfSale); err != nil {
		errs = append(errs, "Date of Sale không phải ngày hợp lệ")
	}
	if rec.QuantitySold < 1 {
		errs = append(errs, "Quantity Sold phải là số >= 1")
	}
	if rec.UnitPrice < 0 {
		errs = append(errs, "Unit Price phải là số >= 0")
	}
	if rec.Discount < 0 || rec.Discount > 1 {
		errs = append(errs, "Discount phải nằm trong khoảng 0 đến 1")
	}
	if rec.ShippingCost < 0 {
		errs = append(errs, "Shipping Cost phải là số >= 0")
	}
	if strings.TrimSpace(rec.PaymentMethod) == "" {
		errs = append(errs, "Payment Method là bắt buộc")
	}
	if strings.TrimSpace(rec.CustomerName) == "" {
		errs = append(errs, "Customer Name là bắt buộc")
	}
	if !emailPattern.MatchString(rec.CustomerEmail) {
		errs = append(errs, "Customer Email không đúng định dạng")
	}
	if strings.TrimSpace(rec.CustomerAddress) == "" {
		errs = append(errs, "Customer Address là bắt buộc")
	}

	return errs
}

// parseCSVRow chuyển một dòng CSV (đã map theo header) thành SalesRecord.
func parseCSVRow(row map[string]string) salesdto.SalesRecord {
	atoi := func(s string) int {
		v, _ := strconv.Atoi(strings.TrimSpace(s))
		return v
	}
	atof := func(s string) float64 {
		v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return v
	}

	return salesdto.SalesRecord{
		OrderId:            strings.TrimSpace(row["Order ID"]),
		ProductId:          strings.TrimSpace(row["Product ID"]),
		CustomerId:         strings.TrimSpace(row["Customer ID"]),
		ProductName:        strings.TrimSpace(row["Product Name"]),
		Category:           strings.TrimSpace(row["Category"]),
		Region:             strings.TrimSpace(row["Region"]),
		DateOfSale:         strings.TrimSpace(row["Date of Sale"]),
		QuantitySold:       atoi(row["Quantity Sold"]),
		UnitPrice:          atof(row["Unit Price"]),
		Discount:           atof(row["Discount"]),
		ShippingCost:       atof(row["Shipping Cost"]),
		PaymentMethod:      strings.TrimSpace(row["Payment Method"]),
		CustomerName:       strings.TrimSpace(row["Customer Name"]),
		CustomerEmail:      strings.TrimSpace(row["Customer Email"]),
		CustomerAddress:    strings.TrimSpace(row["Customer Address"]),
		CustomerAge:        atoi(row["Customer Age"]),
		Gender:             strings.TrimSpace(row["Gender"]),
		ProductDescription: strings.TrimSpace(row["Product Description"]),
	}
}

// recordToCustomer chuyển SalesRecord thành model khách hàng.
func recordToCustomer(rec salesdto.SalesRecord) salesmodels.SalesCustomer {
	return salesmodels.SalesCustomer{
		CustomerId: rec.CustomerId,
		Name:       rec.CustomerName,
		Email:      rec.CustomerEmail,
		Address:    rec.CustomerAddress,
		Demographics: salesmodels.SalesCustomerDemographics{
			Age:      rec.CustomerAge,
			Gender:   rec.Gender,
			Location: rec.Region,
		},
	}
}

// recordToProduct chuyển SalesRecord thành model sản phẩm.
func recordToProduct(rec salesdto.SalesRecord) salesmodels.SalesProduct {
	return salesmodels.SalesProduct{
		ProductId:   rec.ProductId,
		Name:        rec.ProductName,
		Category:    rec.Category,
		Description: rec.ProductDescription,
		UnitPrice:   rec.UnitPrice,
		Stock:       100, // stock mặc định khi nguồn không có cột stock
	}
}

// recordToOrder chuyển SalesRecord thành model đơn hàng. Record phải đã qua ValidateRecord.
func recordToOrder(rec salesdto.SalesRecord) salesmodels.SalesOrder {
	dateMs, _ := utility.ParseDateToMs(rec.DateOfSale)
	return salesmodels.SalesOrder{
		OrderId:       rec.OrderId,
		CustomerId:    rec.CustomerId,
		ProductId:     rec.ProductId,
		ProductName:   rec.ProductName,
		QuantitySold:  rec.QuantitySold,
		UnitPrice:     rec.UnitPrice,
		Discount:      rec.Discount,
		ShippingCost:  rec.ShippingCost,
		PaymentMethod: rec.PaymentMethod,
		DateOfSale:    dateMs,
		Region:        rec.Region,
	}
}

// ImportFromCSV đọc file CSV đã cấu hình, validate từng dòng, bỏ qua (và log) các dòng
// không hợp lệ, upsert customer/product theo khóa tự nhiên và upsert order theo orderId.
func (s *SalesCSVService) ImportFromCSV(ctx context.Context) (*salesdto.ImportSummary, error) {
	log := logger.GetAppLogger()
	startedAt := time.Now()

	file, err := os.Open(s.csvPath)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Không mở được file CSV: %s", s.csvPath),
			common.StatusBadRequest,
			err,
		)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // cho phép số cột lệch, validate theo tên cột

	header, err := reader.Read()
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"File CSV không có dòng header",
			common.StatusBadRequest,
			err,
		)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	summary := &salesdto.ImportSummary{FilePath: s.csvPath}
	log.WithField("path", s.csvPath).Info("Bắt đầu import dữ liệu bán hàng từ CSV")

	records := readSalesRows(reader, header, summary)
	for _, rec := range records {
		if err := s.upsertRecord(ctx, rec); err != nil {
			summary.Skipped++
			summary.RowErrors = append(summary.RowErrors, fmt.Sprintf("Order ID %s: %v", rec.OrderId, err))
			log.WithField("orderId", rec.OrderId).Errorf("Lỗi khi ghi dữ liệu từ dòng CSV: %v", err)
			continue
		}
		summary.Imported++
	}

	summary.DurationMs = time.Since(startedAt).Milliseconds()
	log.WithFields(map[string]interface{}{
		"totalRows": summary.TotalRows,
		"imported":  summary.Imported,
		"skipped":   summary.Skipped,
	}).Info("Import CSV hoàn tất")

	return summary, nil
}

// readSalesRows đọc lần lượt các dòng dữ liệu (sau header), validate từng dòng và
// cập nhật summary. Một dòng hỏng định dạng (csv.ParseError) chỉ làm mất dòng đó:
// reader vẫn đọc tiếp được, các dòng phía sau không bị bỏ rơi. Trả về các bản ghi
// hợp lệ theo thứ tự gặp trong file.
func readSalesRows(reader *csv.Reader, header []string, summary *salesdto.ImportSummary) []salesdto.SalesRecord {
	log := logger.GetAppLogger()
	var records []salesdto.SalesRecord

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				summary.TotalRows++
				summary.Skipped++
				msg := fmt.Sprintf("Dòng %d: lỗi định dạng CSV: %v", parseErr.Line, parseErr.Err)
				summary.RowErrors = append(summary.RowErrors, msg)
				log.Warnf("Bỏ qua dòng CSV hỏng định dạng: %s", msg)
				continue
			}
			// Lỗi đọc không phải lỗi cú pháp (I/O) — không đọc tiếp được nữa
			summary.RowErrors = append(summary.RowErrors, fmt.Sprintf("Dừng đọc file: %v", err))
			log.Errorf("Lỗi đọc file CSV, dừng import: %v", err)
			break
		}
		summary.TotalRows++

		row := map[string]string{}
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}

		rec := parseCSVRow(row)
		if errs := ValidateRecord(rec); len(errs) > 0 {
			summary.Skipped++
			msg := fmt.Sprintf("Order ID %s: %s", rec.OrderId, strings.Join(errs, "; "))
			summary.RowErrors = append(summary.RowErrors, msg)
			log.WithField("orderId", rec.OrderId).Warnf("Bỏ qua dòng CSV không hợp lệ: %s", strings.Join(errs, "; "))
			continue
		}
		records = append(records, rec)
	}

	return records
}

// upsertRecord ghi một bản ghi hợp lệ vào 3 collection theo khóa tự nhiên.
func (s *SalesCSVService) upsertRecord(ctx context.Context, rec salesdto.SalesRecord) error {
	if _, err := s.customerService.Upsert(ctx, map[string]interface{}{"customerId": rec.CustomerId}, recordToCustomer(rec)); err != nil {
		return fmt.Errorf("upsert customer %s: %w", rec.CustomerId, err)
	}
	if _, err := s.productService.Upsert(ctx, map[string]interface{}{"productId": rec.ProductId}, recordToProduct(rec)); err != nil {
		return fmt.Errorf("upsert product %s: %w", rec.ProductId, err)
	}
	if _, err := s.orderService.Upsert(ctx, map[string]interface{}{"orderId": rec.OrderId}, recordToOrder(rec)); err != nil {
		return fmt.Errorf("upsert order %s: %w", rec.OrderId, err)
	}
	return nil
}

// sampleRecords là bộ dữ liệu bán hàng mẫu dùng cho generate-csv.
func sampleRecords() []salesdto.SalesRecord {
	return []salesdto.SalesRecord{
		{
			OrderId: "1001", ProductId: "P123", CustomerId: "C456",
			ProductName: "UltraBoost Running Shoes", Category: "Shoes", Region: "North America",
			DateOfSale: "2023-12-15", QuantitySold: 2, UnitPrice: 180.00,
			Discount: 0.1, ShippingCost: 10.00, PaymentMethod: "Credit Card",
			CustomerName: "John Smith", CustomerEmail: "johnsmith@email.com",
			CustomerAddress:    "123 Main St, Anytown, CA 12345",
			ProductDescription: "High-performance running shoes with Boost technology for extra comfort.",
		},
		{
			OrderId: "1002", ProductId: "P456", CustomerId: "C789",
			ProductName: "iPhone 15 Pro", Category: "Electronics", Region: "Europe",
			DateOfSale: "2024-01-03", QuantitySold: 1, UnitPrice: 1299.00,
			Discount: 0.0, ShippingCost: 15.00, PaymentMethod: "PayPal",
			CustomerName: "Emily Davis", CustomerEmail: "emilydavis@email.com",
			CustomerAddress:    "456 Elm St, Otherville, NY 54321",
			ProductDescription: "A premium smartphone with advanced camera and performance features.",
		},
		{
			OrderId: "1003", ProductId: "P789", CustomerId: "C123",
			ProductName: "MacBook Pro 16-inch", Category: "Electronics", Region: "North America",
			DateOfSale: "2024-02-25", QuantitySold: 1, UnitPrice: 2399.00,
			Discount: 0.05, ShippingCost: 20.00, PaymentMethod: "Credit Card",
			CustomerName: "Alice Johnson", CustomerEmail: "alicejohnson@email.com",
			CustomerAddress:    "789 Oak St, Somewhere, TX 67890",
			ProductDescription: "A powerful laptop with a large Retina display and fast processing.",
		},
	}
}

// csvRowOf dựng một dòng CSV theo đúng thứ tự cột của salesCSVHeader.
// Một bản ghi parse được từ dòng này phải ra lại đúng bản ghi gốc (round-trip).
func csvRowOf(rec salesdto.SalesRecord) []string {
	age := ""
	if rec.CustomerAge > 0 {
		age = strconv.Itoa(rec.CustomerAge)
	}
	return []string{
		rec.OrderId, rec.ProductId, rec.CustomerId, rec.ProductName, rec.Category,
		rec.Region, rec.DateOfSale,
		strconv.Itoa(rec.QuantitySold),
		strconv.FormatFloat(rec.UnitPrice, 'f', 2, 64),
		strconv.FormatFloat(rec.Discount, 'f', -1, 64),
		strconv.FormatFloat(rec.ShippingCost, 'f', 2, 64),
		rec.PaymentMethod, rec.CustomerName, rec.CustomerEmail, rec.CustomerAddress,
		age, rec.Gender, rec.ProductDescription,
	}
}

// GenerateSampleCSV ghi bộ dữ liệu mẫu ra file CSV đã cấu hình.
func (s *SalesCSVService) GenerateSampleCSV() (*salesdto.ExportResult, error) {
	log := logger.GetAppLogger()

	records := sampleRecords()
	for _, rec := range records {
		if errs := ValidateRecord(rec); len(errs) > 0 {
			return nil, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Dữ liệu mẫu không hợp lệ (orderId %s): %s", rec.OrderId, strings.Join(errs, "; ")),
				common.StatusInternalServerError,
				nil,
			)
		}
	}

	file, err := os.Create(s.csvPath)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Không tạo được file CSV: %s", s.csvPath),
			common.StatusInternalServerError,
			err,
		)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(salesCSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range records {
		if err := writer.Write(csvRowOf(rec)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	log.WithFields(map[string]interface{}{"path": s.csvPath, "rows": len(records)}).Info("Đã sinh file CSV mẫu")
	return &salesdto.ExportResult{FilePath: s.csvPath, Rows: len(records)}, nil
}
