// Package salessvc - Test validate bản ghi bán hàng và parse dòng CSV.
package salessvc

import (
	"encoding/csv"
	"strings"
	"testing"

	salesdto "sales_analytics/internal/api/sales/dto"
)

// validRecord trả về một bản ghi hợp lệ làm base cho các case mutate
func validRecord() salesdto.SalesRecord {
	return salesdto.SalesRecord{
		OrderId: "1001", ProductId: "P123", CustomerId: "C456",
		ProductName: "UltraBoost Running Shoes", Category: "Shoes", Region: "North America",
		DateOfSale: "2023-12-15", QuantitySold: 2, UnitPrice: 180.00,
		Discount: 0.1, ShippingCost: 10.00, PaymentMethod: "Credit Card",
		CustomerName: "John Smith", CustomerEmail: "johnsmith@email.com",
		CustomerAddress: "123 Main St, Anytown, CA 12345",
	}
}

func TestValidateRecord_ValidRecordNoErrors(t *testing.T) {
	if errs := ValidateRecord(validRecord()); len(errs) > 0 {
		t.Errorf("bản ghi hợp lệ không được có lỗi, nhận được: %v", errs)
	}
}

func TestValidateRecord_InvalidCases(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*salesdto.SalesRecord)
		wantMsg string
	}{
		{"thiếu Order ID", func(r *salesdto.SalesRecord) { r.OrderId = "" }, "Order ID"},
		{"Order ID toàn khoảng trắng", func(r *salesdto.SalesRecord) { r.OrderId = "   " }, "Order ID"},
		{"thiếu Product ID", func(r *salesdto.SalesRecord) { r.ProductId = "" }, "Product ID"},
		{"thiếu Customer ID", func(r *salesdto.SalesRecord) { r.CustomerId = "" }, "Customer ID"},
		{"thiếu Product Name", func(r *salesdto.SalesRecord) { r.ProductName = "" }, "Product Name"},
		{"ngày không hợp lệ", func(r *salesdto.SalesRecord) { r.DateOfSale = "15/12/2023" }, "Date of Sale"},
		{"ngày rỗng", func(r *salesdto.SalesRecord) { r.DateOfSale = "" }, "Date of Sale"},
		{"số lượng 0", func(r *salesdto.SalesRecord) { r.QuantitySold = 0 }, "Quantity Sold"},
		{"số lượng âm", func(r *salesdto.SalesRecord) { r.QuantitySold = -1 }, "Quantity Sold"},
		{"đơn giá âm", func(r *salesdto.SalesRecord) { r.UnitPrice = -1 }, "Unit Price"},
		{"discount âm", func(r *salesdto.SalesRecord) { r.Discount = -0.1 }, "Discount"},
		{"discount lớn hơn 1", func(r *salesdto.SalesRecord) { r.Discount = 1.5 }, "Discount"},
		{"phí ship âm", func(r *salesdto.SalesRecord) { r.ShippingCost = -5 }, "Shipping Cost"},
		{"thiếu Payment Method", func(r *salesdto.SalesRecord) { r.PaymentMethod = "" }, "Payment Method"},
		{"thiếu Customer Name", func(r *salesdto.SalesRecord) { r.CustomerName = "" }, "Customer Name"},
		{"email sai định dạng", func(r *salesdto.SalesRecord) { r.CustomerEmail = "not-an-email" }, "Customer Email"},
		{"email thiếu domain", func(r *salesdto.SalesRecord) { r.CustomerEmail = "john@" }, "Customer Email"},
		{"thiếu Customer Address", func(r *salesdto.SalesRecord) { r.CustomerAddress = "" }, "Customer Address"},
	}

	for _, c := range cases {
		rec := validRecord()
		c.mutate(&rec)
		errs := ValidateRecord(rec)
		if len(errs) == 0 {
			t.Errorf("%s: phải có lỗi validate", c.name)
			continue
		}
		found := false
		for _, e := range errs {
			if strings.Contains(e, c.wantMsg) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: lỗi phải nhắc đến %q, nhận được %v", c.name, c.wantMsg, errs)
		}
	}
}

func TestValidateRecord_BoundaryValues(t *testing.T) {
	// các giá trị biên hợp lệ: qty=1, price=0, discount=0 và 1, shipping=0
	rec := validRecord()
	rec.QuantitySold = 1
	rec.UnitPrice = 0
	rec.Discount = 0
	rec.ShippingCost = 0
	if errs := ValidateRecord(rec); len(errs) > 0 {
		t.Errorf("giá trị biên dưới phải hợp lệ, nhận được: %v", errs)
	}

	rec = validRecord()
	rec.Discount = 1
	if errs := ValidateRecord(rec); len(errs) > 0 {
		t.Errorf("discount = 1 phải hợp lệ, nhận được: %v", errs)
	}
}

func TestValidateRecord_CollectsMultipleErrors(t *testing.T) {
	rec := salesdto.SalesRecord{}
	errs := ValidateRecord(rec)
	if len(errs) < 5 {
		t.Errorf("bản ghi rỗng phải có nhiều lỗi validate, nhận được %d: %v", len(errs), errs)
	}
}

func TestParseCSVRow(t *testing.T) {
	row := map[string]string{
		"Order ID": " 1001 ", "Product ID": "P123", "Customer ID": "C456",
		"Product Name": "UltraBoost Running Shoes", "Category": "Shoes",
		"Region": "North America", "Date of Sale": "2023-12-15",
		"Quantity Sold": "2", "Unit Price": "180.00", "Discount": "0.1",
		"Shipping Cost": "10.00", "Payment Method": "Credit Card",
		"Customer Name": "John Smith", "Customer Email": "johnsmith@email.com",
		"Customer Address": "123 Main St", "Customer Age": "34", "Gender": "Male",
		"Product Description": "High-performance running shoes.",
	}

	rec := parseCSVRow(row)

	if rec.OrderId != "1001" {
		t.Errorf("OrderId phải được trim, nhận được %q", rec.OrderId)
	}
	if rec.QuantitySold != 2 {
		t.Errorf("QuantitySold = %d, muốn 2", rec.QuantitySold)
	}
	if rec.UnitPrice != 180.00 {
		t.Errorf("UnitPrice = %v, muốn 180.00", rec.UnitPrice)
	}
	if rec.Discount != 0.1 {
		t.Errorf("Discount = %v, muốn 0.1", rec.Discount)
	}
	if rec.CustomerAge != 34 {
		t.Errorf("CustomerAge = %d, muốn 34", rec.CustomerAge)
	}
	if errs := ValidateRecord(rec); len(errs) > 0 {
		t.Errorf("dòng CSV hợp lệ phải parse ra bản ghi hợp lệ, nhận được: %v", errs)
	}
}

func TestParseCSVRow_MissingColumnsDoNotPanic(t *testing.T) {
	rec := parseCSVRow(map[string]string{"Order ID": "1001"})
	if rec.OrderId != "1001" {
		t.Errorf("OrderId = %q, muốn %q", rec.OrderId, "1001")
	}
	if rec.QuantitySold != 0 || rec.UnitPrice != 0 {
		t.Errorf("cột thiếu phải về zero value, nhận được qty=%d price=%v", rec.QuantitySold, rec.UnitPrice)
	}
}

func TestRecordToOrder(t *testing.T) {
	rec := validRecord()
	order := recordToOrder(rec)

	if order.OrderId != rec.OrderId || order.ProductId != rec.ProductId || order.CustomerId != rec.CustomerId {
		t.Errorf("các id phải được giữ nguyên, nhận được %+v", order)
	}
	if order.ProductName != rec.ProductName {
		t.Errorf("ProductName phải được cache trên order, nhận được %q", order.ProductName)
	}
	if order.DateOfSale <= 0 {
		t.Errorf("DateOfSale phải là Unix ms dương, nhận được %d", order.DateOfSale)
	}
	// discount và shippingCost được lưu nhưng không ảnh hưởng doanh thu
	if order.Discount != rec.Discount || order.ShippingCost != rec.ShippingCost {
		t.Errorf("Discount/ShippingCost phải được lưu nguyên giá trị, nhận được %+v", order)
	}
}

func TestRecordToProduct_DefaultStock(t *testing.T) {
	product := recordToProduct(validRecord())
	if product.Stock != 100 {
		t.Errorf("stock mặc định phải là 100, nhận được %d", product.Stock)
	}
}

// csvLine encode một dòng CSV đúng chuẩn (quote các field chứa dấu phẩy)
func csvLine(t *testing.T, fields []string) string {
	t.Helper()
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(fields); err != nil {
		t.Fatalf("không encode được dòng CSV test: %v", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("không flush được dòng CSV test: %v", err)
	}
	return sb.String()
}

// newTestCSVReader dựng csv.Reader trên nội dung file test và đọc sẵn header
func newTestCSVReader(t *testing.T, content string) (*csv.Reader, []string) {
	t.Helper()
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		t.Fatalf("không đọc được header test: %v", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return reader, header
}

func TestReadSalesRows_AllValid(t *testing.T) {
	content := csvLine(t, salesCSVHeader) + csvLine(t, csvRowOf(sampleRecords()[0]))
	reader, header := newTestCSVReader(t, content)

	summary := &salesdto.ImportSummary{}
	records := readSalesRows(reader, header, summary)

	if len(records) != 1 || summary.TotalRows != 1 || summary.Skipped != 0 {
		t.Errorf("1 dòng hợp lệ phải cho 1 bản ghi (total=%d skipped=%d records=%d)",
			summary.TotalRows, summary.Skipped, len(records))
	}
	if records[0].OrderId != "1001" {
		t.Errorf("OrderId = %q, muốn %q", records[0].OrderId, "1001")
	}
}

func TestReadSalesRows_MalformedRowDoesNotDropFollowingRows(t *testing.T) {
	recs := sampleRecords()
	// dòng giữa hỏng cú pháp CSV (dấu nháy lạc giữa field không quote)
	content := csvLine(t, salesCSVHeader) +
		csvLine(t, csvRowOf(recs[0])) +
		`1002,P456,C789,iPhone "15 Pro,Electronics,Europe,2024-01-03,1,1299.00,0,15.00,PayPal,Emily Davis,emilydavis@email.com,456 Elm St,,,` + "\n" +
		csvLine(t, csvRowOf(recs[2]))
	reader, header := newTestCSVReader(t, content)

	summary := &salesdto.ImportSummary{}
	records := readSalesRows(reader, header, summary)

	if len(records) != 2 {
		t.Fatalf("dòng hỏng định dạng chỉ được làm mất dòng đó, các dòng sau phải được đọc tiếp: nhận được %d bản ghi", len(records))
	}
	if records[0].OrderId != "1001" || records[1].OrderId != "1003" {
		t.Errorf("hai dòng hợp lệ phải được giữ theo thứ tự, nhận được %q và %q", records[0].OrderId, records[1].OrderId)
	}
	if summary.TotalRows != 3 {
		t.Errorf("dòng hỏng vẫn phải được đếm vào TotalRows, nhận được %d", summary.TotalRows)
	}
	if summary.Skipped != 1 {
		t.Errorf("dòng hỏng phải được đếm vào Skipped, nhận được %d", summary.Skipped)
	}
	if len(summary.RowErrors) != 1 || !strings.Contains(summary.RowErrors[0], "định dạng") {
		t.Errorf("dòng hỏng phải có mục RowErrors mô tả lỗi định dạng, nhận được %v", summary.RowErrors)
	}
}

func TestReadSalesRows_InvalidRowSkippedWithError(t *testing.T) {
	bad := sampleRecords()[0]
	bad.QuantitySold = 0
	content := csvLine(t, salesCSVHeader) +
		csvLine(t, csvRowOf(bad)) +
		csvLine(t, csvRowOf(sampleRecords()[1]))
	reader, header := newTestCSVReader(t, content)

	summary := &salesdto.ImportSummary{}
	records := readSalesRows(reader, header, summary)

	if len(records) != 1 || records[0].OrderId != "1002" {
		t.Errorf("dòng không qua validate phải bị bỏ, dòng sau giữ lại: nhận được %d bản ghi", len(records))
	}
	if summary.Skipped != 1 || len(summary.RowErrors) != 1 {
		t.Errorf("dòng không hợp lệ phải được đếm vào Skipped và RowErrors (skipped=%d errors=%d)",
			summary.Skipped, len(summary.RowErrors))
	}
}

func TestCsvRowOf_RoundTrip(t *testing.T) {
	rec := validRecord()
	rec.CustomerAge = 34
	rec.Gender = "Male"
	rec.ProductDescription = "High-performance running shoes."

	row := csvRowOf(rec)
	if len(row) != len(salesCSVHeader) {
		t.Fatalf("số cột của dòng export (%d) phải khớp header (%d)", len(row), len(salesCSVHeader))
	}

	mapped := map[string]string{}
	for i, col := range salesCSVHeader {
		mapped[col] = row[i]
	}
	parsed := parseCSVRow(mapped)

	if parsed.OrderId != rec.OrderId || parsed.ProductId != rec.ProductId || parsed.CustomerId != rec.CustomerId {
		t.Errorf("round-trip làm mất id: %+v", parsed)
	}
	if parsed.CustomerAge != 34 {
		t.Errorf("Customer Age phải được export và parse lại nguyên vẹn, nhận được %d", parsed.CustomerAge)
	}
	if parsed.Gender != "Male" {
		t.Errorf("Gender round-trip sai, nhận được %q", parsed.Gender)
	}
	if parsed.QuantitySold != rec.QuantitySold || parsed.UnitPrice != rec.UnitPrice ||
		parsed.Discount != rec.Discount || parsed.ShippingCost != rec.ShippingCost {
		t.Errorf("các trường số round-trip sai: %+v", parsed)
	}
	if parsed.DateOfSale != rec.DateOfSale {
		t.Errorf("Date of Sale round-trip sai, nhận được %q", parsed.DateOfSale)
	}
}

func TestCsvRowOf_ZeroAgeStaysEmpty(t *testing.T) {
	row := csvRowOf(validRecord())
	ageIdx := -1
	for i, col := range salesCSVHeader {
		if col == "Customer Age" {
			ageIdx = i
		}
	}
	if ageIdx < 0 {
		t.Fatal("header không có cột Customer Age")
	}
	if row[ageIdx] != "" {
		t.Errorf("age = 0 (không có dữ liệu) phải export thành chuỗi rỗng, nhận được %q", row[ageIdx])
	}
}

func TestSampleRecords_AllValid(t *testing.T) {
	records := sampleRecords()
	if len(records) != 3 {
		t.Fatalf("bộ dữ liệu mẫu phải có 3 bản ghi, nhận được %d", len(records))
	}
	for _, rec := range records {
		if errs := ValidateRecord(rec); len(errs) > 0 {
			t.Errorf("bản ghi mẫu %s không hợp lệ: %v", rec.OrderId, errs)
		}
	}
}
