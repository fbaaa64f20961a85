package worker

import (
	"context"
	"time"

	salessvc "sales_analytics/internal/api/sales/service"
	"sales_analytics/internal/logger"
)

// DataRefreshWorker chạy định kỳ RefreshService.RefreshOnce để đồng bộ dữ liệu
// bán hàng từ feed ngoài. Worker sở hữu lịch chạy (ticker); bản thân refresh là
// stateless nên một lần chạy lỗi không ảnh hưởng các lần sau.
type DataRefreshWorker struct {
	refreshService *salessvc.RefreshService
	interval       time.Duration // Khoảng thời gian giữa các lần chạy
}

// NewDataRefreshWorker tạo mới DataRefreshWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (tối thiểu 1 phút, mặc định 24 giờ)
func NewDataRefreshWorker(interval time.Duration) (*DataRefreshWorker, error) {
	refreshService, err := salessvc.NewRefreshService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 24 * time.Hour
	}
	return &DataRefreshWorker{
		refreshService: refreshService,
		interval:       interval,
	}, nil
}

// Start chạy worker trong vòng lặp: mỗi interval gọi một lượt RefreshOnce.
// Dừng khi ctx bị cancel. Panic trong một lượt chạy được recover và log,
// worker tiếp tục ở lần chạy tiếp theo.
func (w *DataRefreshWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🔄 [DATA_REFRESH] Starting Data Refresh Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [DATA_REFRESH] Data Refresh Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🔄 [DATA_REFRESH] Panic khi refresh dữ liệu, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				summary, err := w.refreshService.RefreshOnce(ctx)
				if err != nil {
					log.WithError(err).Error("🔄 [DATA_REFRESH] Lượt refresh thất bại")
					return
				}

				log.WithFields(map[string]interface{}{
					"fetched":   summary.FetchedRecords,
					"inserted":  summary.Inserted,
					"updated":   summary.Updated,
					"unchanged": summary.Unchanged,
					"failed":    summary.Failed,
				}).Info("🔄 [DATA_REFRESH] Lượt refresh hoàn tất")
			}()
		}
	}
}
