// Package models - SalesProduct thuộc domain Sales (sales_products).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesProduct lưu sản phẩm (sales_products).
// Đơn hàng tham chiếu product qua ProductId (string tự nhiên, không phải ObjectID);
// Category của product là nguồn cho báo cáo doanh thu theo danh mục.
type SalesProduct struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ProductId   string  `json:"productId" bson:"productId" validate:"required" index:"unique"`
	Name        string  `json:"name" bson:"name" validate:"required"`
	Category    string  `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice" validate:"gte=0"`
	Stock       int     `json:"stock" bson:"stock" validate:"gte=0"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
