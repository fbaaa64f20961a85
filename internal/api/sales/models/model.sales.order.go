// Package models - SalesOrder thuộc domain Sales (sales_orders).
// Lưu đơn hàng bán — nguồn dữ liệu cho toàn bộ các phép tổng hợp doanh thu.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesOrder lưu đơn hàng bán (sales_orders).
// Doanh thu của mỗi đơn = QuantitySold * UnitPrice (gross — Discount và
// ShippingCost được lưu nhưng KHÔNG trừ vào doanh thu trong mọi báo cáo).
type SalesOrder struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity — khóa tự nhiên, tham chiếu product/customer theo string id
	OrderId    string `json:"orderId" bson:"orderId" validate:"required" index:"unique"`
	CustomerId string `json:"customerId" bson:"customerId" validate:"required" index:"single"`
	ProductId  string `json:"productId" bson:"productId" validate:"required" index:"single"`

	// ProductName — tên sản phẩm cache trên đơn; là grouping key cho các
	// báo cáo theo sản phẩm (hai product khác id trùng tên sẽ gộp chung bucket)
	ProductName string `json:"productName" bson:"productName"`

	// Số liệu bán hàng
	QuantitySold  int     `json:"quantitySold" bson:"quantitySold" validate:"gte=0"`
	UnitPrice     float64 `json:"unitPrice" bson:"unitPrice" validate:"gte=0"`
	Discount      float64 `json:"discount" bson:"discount"`         // tỉ lệ giảm giá [0,1], mặc định 0
	ShippingCost  float64 `json:"shippingCost" bson:"shippingCost"` // phí ship, mặc định 0
	PaymentMethod string  `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`

	// DateOfSale — thời điểm bán, Unix ms. Mọi filter theo khoảng ngày đều chạy trên trường này.
	DateOfSale int64 `json:"dateOfSale" bson:"dateOfSale" validate:"required" index:"single,order:-1"`

	// Region — vùng bán (tùy chọn), grouping key cho báo cáo theo vùng
	Region string `json:"region,omitempty" bson:"region,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
