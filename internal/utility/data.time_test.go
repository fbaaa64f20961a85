// Package utility - Test parse ngày ISO-8601 về Unix milliseconds.
package utility

import (
	"testing"
	"time"
)

func TestParseDateToMs(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"2024-03-10", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC).UnixMilli()},
		{"2024-03-10T15:04:05", time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC).UnixMilli()},
		{"2024-03-10T15:04:05Z", time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC).UnixMilli()},
	}

	for _, c := range cases {
		got, err := ParseDateToMs(c.input)
		if err != nil {
			t.Errorf("ParseDateToMs(%q) lỗi: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDateToMs(%q) = %d, muốn %d", c.input, got, c.want)
		}
	}
}

func TestParseDateToMs_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "10/03/2024", "2024-13-01", "2024-03-32"} {
		if _, err := ParseDateToMs(input); err == nil {
			t.Errorf("ParseDateToMs(%q) phải trả về lỗi", input)
		}
	}
}

func TestParseDateToMs_DateOnlyIsMidnightUTC(t *testing.T) {
	ms, err := ParseDateToMs("2024-03-10")
	if err != nil {
		t.Fatalf("ParseDateToMs lỗi: %v", err)
	}
	parsed := time.UnixMilli(ms).UTC()
	if parsed.Hour() != 0 || parsed.Minute() != 0 || parsed.Second() != 0 {
		t.Errorf("ngày không có giờ phải là 00:00:00 UTC, nhận được %v", parsed)
	}
}
