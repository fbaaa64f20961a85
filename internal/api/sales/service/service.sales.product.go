package salessvc

import (
	"fmt"

	basesvc "sales_analytics/internal/api/base/service"
	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/common"
	"sales_analytics/internal/global"
)

// SalesProductService là service quản lý sản phẩm.
type SalesProductService struct {
	*basesvc.BaseServiceMongoImpl[salesmodels.SalesProduct]
}

// NewSalesProductService tạo mới SalesProductService
func NewSalesProductService() (*SalesProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SalesProducts)
	if !exist {
		return nil, fmt.Errorf("failed to get sales_products collection: %v", common.ErrNotFound)
	}

	return &SalesProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[salesmodels.SalesProduct](collection),
	}, nil
}
