package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"sales_analytics/internal/global"
	"sales_analytics/internal/logger"
	"sales_analytics/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := ":" + cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	// Khởi tạo và chạy Data Refresh Worker (background, định kỳ đồng bộ feed)
	if cfg.RefreshEnabled {
		interval := time.Duration(cfg.RefreshIntervalMinutes) * time.Minute
		refreshWorker, err := worker.NewDataRefreshWorker(interval)
		if err != nil {
			log.WithError(err).Error("Failed to create data refresh worker, continuing without refresh worker")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🔄 [DATA_REFRESH] Worker goroutine panic")
					}
				}()

				refreshWorker.Start(ctx)
				log.Warn("🔄 [DATA_REFRESH] Worker đã dừng (có thể do context cancelled)")
			}()

			log.Info("🔄 [DATA_REFRESH] Data Refresh Worker started successfully")
		}
	} else {
		log.Info("🔄 [DATA_REFRESH] Refresh worker disabled by config")
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
