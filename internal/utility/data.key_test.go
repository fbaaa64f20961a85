// Package utility - Test chuẩn hóa string key cho các id từ CSV/feed.
package utility

import "testing"

func TestToStringKey(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"string giữ nguyên", "P123", "P123"},
		{"string trim khoảng trắng", "  P123  ", "P123"},
		{"string rỗng", "", ""},
		{"nil", nil, ""},
		{"int", 123, "123"},
		{"int64", int64(456), "456"},
		{"int32", int32(789), "789"},
		{"float64 nguyên (JSON number)", float64(123), "123"},
		{"float64 lẻ giữ phần thập phân", 12.5, "12.5"},
	}

	for _, c := range cases {
		got := ToStringKey(c.input)
		if got != c.want {
			t.Errorf("%s: ToStringKey(%v) = %q, muốn %q", c.name, c.input, got, c.want)
		}
	}
}

func TestToStringKey_NumericAndStringIdMatch(t *testing.T) {
	// id "123" từ CSV (string) và 123 từ JSON feed (float64) phải ra cùng key
	if ToStringKey("123") != ToStringKey(float64(123)) {
		t.Errorf("id dạng chuỗi và dạng số của cùng thực thể phải chuẩn hóa về cùng key: %q vs %q",
			ToStringKey("123"), ToStringKey(float64(123)))
	}
}
