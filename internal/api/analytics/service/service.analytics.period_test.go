// Package analyticssvc - Test parse và tính khóa bucket của Period.
package analyticssvc

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		input string
		want  Period
		ok    bool
	}{
		{"monthly", PeriodMonthly, true},
		{"quarterly", PeriodQuarterly, true},
		{"yearly", PeriodYearly, true},
		{"MONTHLY", PeriodMonthly, true},
		{"Quarterly", PeriodQuarterly, true},
		{" yearly ", PeriodYearly, true},
		{"weekly", 0, false},
		{"daily", 0, false},
		{"month", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, ok := ParsePeriod(c.input)
		if ok != c.ok {
			t.Errorf("ParsePeriod(%q): ok = %v, muốn %v", c.input, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ParsePeriod(%q) = %v, muốn %v", c.input, got, c.want)
		}
	}
}

func TestPeriodString(t *testing.T) {
	if PeriodMonthly.String() != "monthly" {
		t.Errorf("PeriodMonthly.String() = %q, muốn %q", PeriodMonthly.String(), "monthly")
	}
	if PeriodQuarterly.String() != "quarterly" {
		t.Errorf("PeriodQuarterly.String() = %q, muốn %q", PeriodQuarterly.String(), "quarterly")
	}
	if PeriodYearly.String() != "yearly" {
		t.Errorf("PeriodYearly.String() = %q, muốn %q", PeriodYearly.String(), "yearly")
	}
}

func TestBucketKey(t *testing.T) {
	atMs := func(year int, month time.Month, day int) int64 {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).UnixMilli()
	}

	cases := []struct {
		name   string
		period Period
		dateMs int64
		want   int
	}{
		{"monthly tháng 1", PeriodMonthly, atMs(2024, time.January, 15), 1},
		{"monthly tháng 12", PeriodMonthly, atMs(2024, time.December, 31), 12},
		{"monthly bỏ qua năm", PeriodMonthly, atMs(1999, time.March, 1), 3},
		{"quarterly tháng 1 → quý 1", PeriodQuarterly, atMs(2024, time.January, 1), 1},
		{"quarterly tháng 3 → quý 1", PeriodQuarterly, atMs(2024, time.March, 31), 1},
		{"quarterly tháng 4 → quý 2", PeriodQuarterly, atMs(2024, time.April, 1), 2},
		{"quarterly tháng 6 → quý 2", PeriodQuarterly, atMs(2024, time.June, 30), 2},
		{"quarterly tháng 7 → quý 3", PeriodQuarterly, atMs(2024, time.July, 1), 3},
		{"quarterly tháng 10 → quý 4", PeriodQuarterly, atMs(2024, time.October, 1), 4},
		{"quarterly tháng 12 → quý 4", PeriodQuarterly, atMs(2024, time.December, 31), 4},
		{"yearly", PeriodYearly, atMs(2024, time.June, 15), 2024},
		{"yearly năm khác", PeriodYearly, atMs(1999, time.January, 1), 1999},
	}

	for _, c := range cases {
		got := c.period.BucketKey(c.dateMs)
		if got != c.want {
			t.Errorf("%s: BucketKey = %d, muốn %d", c.name, got, c.want)
		}
	}
}
