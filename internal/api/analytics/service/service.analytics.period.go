// Package analyticssvc chứa phần tính toán tổng hợp doanh thu trên tập đơn hàng.
package analyticssvc

import (
	"strings"
	"time"
)

// Period là chu kỳ bucket thời gian cho báo cáo xu hướng doanh thu.
type Period int

const (
	PeriodMonthly Period = iota + 1
	PeriodQuarterly
	PeriodYearly
)

// String trả về tên chu kỳ dạng chữ thường
func (p Period) String() string {
	switch p {
	case PeriodMonthly:
		return "monthly"
	case PeriodQuarterly:
		return "quarterly"
	case PeriodYearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// ParsePeriod parse chuỗi period từ query string, không phân biệt hoa thường.
// Giá trị ngoài {monthly, quarterly, yearly} trả về ok=false.
func ParsePeriod(s string) (Period, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return PeriodMonthly, true
	case "quarterly":
		return PeriodQuarterly, true
	case "yearly":
		return PeriodYearly, true
	default:
		return 0, false
	}
}

// BucketKey tính khóa bucket thời gian cho một thời điểm bán (Unix ms, UTC).
//   - monthly: số tháng 1-12, bỏ qua năm (các năm khác nhau gộp chung tháng)
//   - quarterly: ceil(tháng/3) = quý 1-4, cùng quy tắc bỏ qua năm
//   - yearly: số năm dương lịch
func (p Period) BucketKey(dateOfSaleMs int64) int {
	t := time.UnixMilli(dateOfSaleMs).UTC()
	switch p {
	case PeriodMonthly:
		return int(t.Month())
	case PeriodQuarterly:
		return (int(t.Month()) + 2) / 3
	case PeriodYearly:
		return t.Year()
	default:
		return 0
	}
}
