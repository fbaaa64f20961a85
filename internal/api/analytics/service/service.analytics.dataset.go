package analyticssvc

import (
	"context"
	"fmt"

	salesmodels "sales_analytics/internal/api/sales/models"
	salessvc "sales_analytics/internal/api/sales/service"
)

// OrderDataset là nguồn đơn hàng chỉ đọc cho engine tổng hợp.
// Engine không ghi dữ liệu; mọi concurrency/retry thuộc về tầng truy cập dữ liệu.
type OrderDataset interface {
	// OrdersInRange trả về các đơn có dateOfSale trong [startMs, endMs] (hai đầu đóng)
	OrdersInRange(ctx context.Context, startMs, endMs int64) ([]salesmodels.SalesOrder, error)
	// AllOrders trả về toàn bộ đơn hàng (cho báo cáo không filter ngày)
	AllOrders(ctx context.Context) ([]salesmodels.SalesOrder, error)
}

// ProductCatalog là nguồn tra cứu sản phẩm cho bước join category.
type ProductCatalog interface {
	AllProducts(ctx context.Context) ([]salesmodels.SalesProduct, error)
}

// mongoOrderDataset cài đặt OrderDataset trên collection sales_orders.
type mongoOrderDataset struct {
	orderService *salessvc.SalesOrderService
}

// NewMongoOrderDataset tạo OrderDataset đọc từ MongoDB
func NewMongoOrderDataset() (OrderDataset, error) {
	orderService, err := salessvc.NewSalesOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales order service: %v", err)
	}
	return &mongoOrderDataset{orderService: orderService}, nil
}

func (d *mongoOrderDataset) OrdersInRange(ctx context.Context, startMs, endMs int64) ([]salesmodels.SalesOrder, error) {
	return d.orderService.FindInDateRange(ctx, startMs, endMs)
}

func (d *mongoOrderDataset) AllOrders(ctx context.Context) ([]salesmodels.SalesOrder, error) {
	return d.orderService.Find(ctx, nil, nil)
}

// mongoProductCatalog cài đặt ProductCatalog trên collection sales_products.
type mongoProductCatalog struct {
	productService *salessvc.SalesProductService
}

// NewMongoProductCatalog tạo ProductCatalog đọc từ MongoDB
func NewMongoProductCatalog() (ProductCatalog, error) {
	productService, err := salessvc.NewSalesProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sales product service: %v", err)
	}
	return &mongoProductCatalog{productService: productService}, nil
}

func (c *mongoProductCatalog) AllProducts(ctx context.Context) ([]salesmodels.SalesProduct, error) {
	return c.productService.Find(ctx, nil, nil)
}
