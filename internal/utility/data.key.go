package utility

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToStringKey chuẩn hóa một giá trị định danh bất kỳ về string key.
// Dữ liệu từ CSV/feed có thể mang id dạng số hoặc chuỗi cho cùng một thực thể,
// nếu không chuẩn hóa thì phép join giữa order và product sẽ miss âm thầm.
func ToStringKey(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		// Số nguyên lưu dưới dạng float (JSON number) — bỏ phần thập phân nếu tròn
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}
