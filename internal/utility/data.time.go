package utility

import (
	"fmt"
	"strings"
	"time"
)

// Các layout ngày được chấp nhận cho tham số đầu vào (ISO-8601).
var acceptedDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDateToMs parse chuỗi ngày ISO-8601 về Unix ms (UTC).
// Chuỗi chỉ có ngày (2006-01-02) được hiểu là 00:00:00 UTC của ngày đó.
func ParseDateToMs(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("chuỗi ngày rỗng")
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("không parse được ngày: %q", s)
}
