// Package salesdto chứa các cấu trúc dữ liệu vào/ra cho domain Sales.
package salesdto

// SalesRecord là một bản ghi bán hàng phẳng từ nguồn ngoài (file CSV hoặc feed JSON).
// Một record chứa đủ thông tin để upsert cả customer, product và order.
type SalesRecord struct {
	OrderId            string  `json:"orderId"`
	ProductId          string  `json:"productId"`
	CustomerId         string  `json:"customerId"`
	ProductName        string  `json:"productName"`
	Category           string  `json:"category"`
	Region             string  `json:"region"`
	DateOfSale         string  `json:"dateOfSale"` // ISO-8601 (2006-01-02 hoặc RFC3339)
	QuantitySold       int     `json:"quantitySold"`
	UnitPrice          float64 `json:"unitPrice"`
	Discount           float64 `json:"discount"`
	ShippingCost       float64 `json:"shippingCost"`
	PaymentMethod      string  `json:"paymentMethod"`
	CustomerName       string  `json:"customerName"`
	CustomerEmail      string  `json:"customerEmail"`
	CustomerAddress    string  `json:"customerAddress"`
	CustomerAge        int     `json:"customerAge,omitempty"`
	Gender             string  `json:"gender,omitempty"`
	ProductDescription string  `json:"productDescription,omitempty"`
}

// ImportSummary kết quả một lần import CSV.
type ImportSummary struct {
	TotalRows   int      `json:"totalRows"`
	Imported    int      `json:"imported"`
	Skipped     int      `json:"skipped"`
	RowErrors   []string `json:"rowErrors,omitempty"` // mô tả lỗi của các dòng bị bỏ qua
	FilePath    string   `json:"filePath"`
	DurationMs  int64    `json:"durationMs"`
}

// RefreshSummary kết quả một lần refresh dữ liệu từ feed.
type RefreshSummary struct {
	FetchedRecords int   `json:"fetchedRecords"`
	Inserted       int   `json:"inserted"`
	Updated        int   `json:"updated"`
	Unchanged      int   `json:"unchanged"`
	Failed         int   `json:"failed"`
	DurationMs     int64 `json:"durationMs"`
}

// ExportResult kết quả sinh file CSV mẫu.
type ExportResult struct {
	FilePath string `json:"filePath"`
	Rows     int    `json:"rows"`
}
