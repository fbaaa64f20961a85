// Package database - Index bổ sung cho phân tích doanh thu (compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"sales_analytics/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateSalesAdditionalIndexes tạo các index bổ sung phục vụ truy vấn phân tích.
// Gọi sau CreateIndexes cho từng collection.
func CreateSalesAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	salesOrders := db.Collection(global.MongoDB_ColNames.SalesOrders)

	// sales_orders: (region, dateOfSale) — doanh thu theo vùng trong khoảng thời gian
	if _, err := salesOrders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "region", Value: 1},
			{Key: "dateOfSale", Value: 1},
		},
		Options: options.Index().SetName("sales_order_region_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sales_orders: (productId, dateOfSale) — doanh thu theo sản phẩm trong khoảng thời gian
	if _, err := salesOrders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "dateOfSale", Value: 1},
		},
		Options: options.Index().SetName("sales_order_product_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
