// Package salessvc chứa service data access cho domain Sales.
// Nằm trong folder service/; base service (BaseServiceMongoImpl) ở api/basesvc.
package salessvc

import (
	"context"
	"fmt"

	basesvc "sales_analytics/internal/api/base/service"
	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/common"
	"sales_analytics/internal/global"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// SalesOrderService là service quản lý đơn hàng bán.
type SalesOrderService struct {
	*basesvc.BaseServiceMongoImpl[salesmodels.SalesOrder]
}

// NewSalesOrderService tạo mới SalesOrderService
func NewSalesOrderService() (*SalesOrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SalesOrders)
	if !exist {
		return nil, fmt.Errorf("failed to get sales_orders collection: %v", common.ErrNotFound)
	}

	return &SalesOrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[salesmodels.SalesOrder](collection),
	}, nil
}

// FindInDateRange tìm các đơn hàng có dateOfSale trong khoảng [start, end] (Unix ms, hai đầu đóng)
func (s *SalesOrderService) FindInDateRange(ctx context.Context, start, end int64) ([]salesmodels.SalesOrder, error) {
	filter := map[string]interface{}{
		"dateOfSale": map[string]interface{}{
			"$gte": start,
			"$lte": end,
		},
	}
	return s.Find(ctx, filter, options.Find().SetSort(map[string]interface{}{"dateOfSale": 1}))
}
