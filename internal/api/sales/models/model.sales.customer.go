// Package models - SalesCustomer thuộc domain Sales (sales_customers).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesCustomerDemographics thông tin nhân khẩu học (tùy chọn).
type SalesCustomerDemographics struct {
	Age      int    `json:"age,omitempty" bson:"age,omitempty"`
	Gender   string `json:"gender,omitempty" bson:"gender,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
}

// SalesCustomer lưu khách hàng (sales_customers).
// Chỉ được ghi bởi import/refresh; phần analytics không đọc trực tiếp collection này.
type SalesCustomer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CustomerId string `json:"customerId" bson:"customerId" validate:"required" index:"unique"`
	Name       string `json:"name" bson:"name" validate:"required"`

	// Email unique + sparse: document không có email vẫn insert được nhiều bản
	Email   string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email" index:"unique,sparse"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`

	Demographics SalesCustomerDemographics `json:"demographics,omitempty" bson:"demographics,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
