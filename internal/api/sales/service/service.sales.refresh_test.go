// Package salessvc - Test phát hiện thay đổi dữ liệu trong refresh từ feed.
package salessvc

import (
	"testing"

	salesdto "sales_analytics/internal/api/sales/dto"
	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/utility"
)

func feedRecord() salesdto.SalesRecord {
	return salesdto.SalesRecord{
		OrderId: "1001", ProductId: "P123", CustomerId: "C456",
		ProductName: "UltraBoost Running Shoes", Category: "Footwear", Region: "North America",
		DateOfSale: "2025-04-18", QuantitySold: 2, UnitPrice: 180.0,
		Discount: 0.1, ShippingCost: 5.0, PaymentMethod: "Credit Card",
		CustomerName: "Alice Smith", CustomerEmail: "alice@example.com",
		CustomerAddress: "123 Main St, Springfield",
	}
}

func TestCustomerChanged(t *testing.T) {
	rec := feedRecord()
	same := salesmodels.SalesCustomer{
		CustomerId: "C456",
		Name:       "Alice Smith",
		Email:      "alice@example.com",
		Address:    "123 Main St, Springfield",
	}

	if customerChanged(same, rec) {
		t.Error("customer không đổi dữ liệu nhưng customerChanged trả về true")
	}

	cases := []struct {
		name   string
		mutate func(*salesmodels.SalesCustomer)
	}{
		{"đổi tên", func(c *salesmodels.SalesCustomer) { c.Name = "Alice Brown" }},
		{"đổi email", func(c *salesmodels.SalesCustomer) { c.Email = "other@example.com" }},
		{"đổi địa chỉ", func(c *salesmodels.SalesCustomer) { c.Address = "456 Oak Ave" }},
	}
	for _, c := range cases {
		existing := same
		c.mutate(&existing)
		if !customerChanged(existing, rec) {
			t.Errorf("%s: customerChanged phải trả về true", c.name)
		}
	}
}

func TestProductChanged(t *testing.T) {
	rec := feedRecord()
	same := salesmodels.SalesProduct{
		ProductId: "P123",
		Name:      "UltraBoost Running Shoes",
		UnitPrice: 180.0,
		Category:  "Footwear",
	}

	if productChanged(same, rec) {
		t.Error("product không đổi dữ liệu nhưng productChanged trả về true")
	}

	changedName := same
	changedName.Name = "Old Name"
	if !productChanged(changedName, rec) {
		t.Error("đổi tên product phải được phát hiện")
	}

	changedPrice := same
	changedPrice.UnitPrice = 150.0
	if !productChanged(changedPrice, rec) {
		t.Error("đổi đơn giá product phải được phát hiện")
	}

	changedCategory := same
	changedCategory.Category = "Shoes"
	if !productChanged(changedCategory, rec) {
		t.Error("đổi category product phải được phát hiện")
	}

	// feed không gửi category → không coi category hiện có là thay đổi
	recNoCategory := rec
	recNoCategory.Category = ""
	if productChanged(same, recNoCategory) {
		t.Error("feed không có category thì không được tính là thay đổi category")
	}
}

func TestOrderChanged(t *testing.T) {
	rec := feedRecord()
	dateMs, err := utility.ParseDateToMs(rec.DateOfSale)
	if err != nil {
		t.Fatalf("không parse được ngày feed test: %v", err)
	}
	same := salesmodels.SalesOrder{
		OrderId:      "1001",
		QuantitySold: 2,
		UnitPrice:    180.0,
		Discount:     0.1,
		ShippingCost: 5.0,
		DateOfSale:   dateMs,
	}

	if orderChanged(same, rec) {
		t.Error("order không đổi dữ liệu nhưng orderChanged trả về true")
	}

	cases := []struct {
		name   string
		mutate func(*salesmodels.SalesOrder)
	}{
		{"đổi số lượng", func(o *salesmodels.SalesOrder) { o.QuantitySold = 3 }},
		{"đổi đơn giá", func(o *salesmodels.SalesOrder) { o.UnitPrice = 200 }},
		{"đổi discount", func(o *salesmodels.SalesOrder) { o.Discount = 0.2 }},
		{"đổi phí ship", func(o *salesmodels.SalesOrder) { o.ShippingCost = 10 }},
		{"đổi ngày bán", func(o *salesmodels.SalesOrder) { o.DateOfSale = dateMs - 86400000 }},
	}
	for _, c := range cases {
		existing := same
		c.mutate(&existing)
		if !orderChanged(existing, rec) {
			t.Errorf("%s: orderChanged phải trả về true", c.name)
		}
	}
}

func TestSampleFeedRecords_AllValid(t *testing.T) {
	records := sampleFeedRecords()
	if len(records) == 0 {
		t.Fatal("dữ liệu feed mẫu không được rỗng")
	}
	for _, rec := range records {
		if errs := ValidateRecord(rec); len(errs) > 0 {
			t.Errorf("bản ghi feed mẫu %s không hợp lệ: %v", rec.OrderId, errs)
		}
	}
}
