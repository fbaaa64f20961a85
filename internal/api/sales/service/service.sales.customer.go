package salessvc

import (
	"fmt"

	basesvc "sales_analytics/internal/api/base/service"
	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/common"
	"sales_analytics/internal/global"
)

// SalesCustomerService là service quản lý khách hàng.
type SalesCustomerService struct {
	*basesvc.BaseServiceMongoImpl[salesmodels.SalesCustomer]
}

// NewSalesCustomerService tạo mới SalesCustomerService
func NewSalesCustomerService() (*SalesCustomerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SalesCustomers)
	if !exist {
		return nil, fmt.Errorf("failed to get sales_customers collection: %v", common.ErrNotFound)
	}

	return &SalesCustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[salesmodels.SalesCustomer](collection),
	}, nil
}
