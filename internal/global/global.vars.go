package global

import (
	"sales_analytics/config"
	"sales_analytics/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Sales_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Sales_CollectionName struct {
	SalesOrders    string // Tên collection cho đơn hàng
	SalesProducts  string // Tên collection cho sản phẩm
	SalesCustomers string // Tên collection cho khách hàng
}

// Các biến toàn cục
var Validate *validator.Validate                                                       // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                      // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                         // Cấu hình của server
var MongoDB_ColNames MongoDB_Sales_CollectionName = *new(MongoDB_Sales_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections

// InitColNames gán tên các collection của hệ thống
func InitColNames() {
	MongoDB_ColNames.SalesOrders = "sales_orders"
	MongoDB_ColNames.SalesProducts = "sales_products"
	MongoDB_ColNames.SalesCustomers = "sales_customers"
}

// GetAllColNames trả về danh sách tên tất cả collection
func GetAllColNames() []string {
	return []string{
		MongoDB_ColNames.SalesOrders,
		MongoDB_ColNames.SalesProducts,
		MongoDB_ColNames.SalesCustomers,
	}
}
