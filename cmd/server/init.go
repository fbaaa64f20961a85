package main

import (
	"context"

	"sales_analytics/config"
	salesmodels "sales_analytics/internal/api/sales/models"
	"sales_analytics/internal/database"
	"sales_analytics/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.InitColNames()
	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo database và các collection nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo index cho các collection từ tag trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.SalesOrders), salesmodels.SalesOrder{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.SalesProducts), salesmodels.SalesProduct{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.SalesCustomers), salesmodels.SalesCustomer{})

	// Index compound phục vụ các truy vấn analytics
	if err := database.CreateSalesAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional sales indexes: %v", err)
	}
}
