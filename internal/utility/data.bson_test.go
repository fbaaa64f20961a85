// Package utility - Test chuyển struct thành map qua vòng bson (dùng cho $set update).
package utility

import "testing"

func TestToMap(t *testing.T) {
	type doc struct {
		OrderId   string  `bson:"orderId"`
		UnitPrice float64 `bson:"unitPrice"`
		Region    string  `bson:"region,omitempty"`
	}

	m, err := ToMap(doc{OrderId: "1001", UnitPrice: 180})
	if err != nil {
		t.Fatalf("ToMap lỗi: %v", err)
	}
	if m["orderId"] != "1001" {
		t.Errorf("key phải theo bson tag, nhận được %v", m)
	}
	if m["unitPrice"] != float64(180) {
		t.Errorf("unitPrice = %v, muốn 180", m["unitPrice"])
	}
	if _, ok := m["region"]; ok {
		t.Errorf("field omitempty rỗng không được xuất hiện trong map, nhận được %v", m)
	}
}

func TestToMap_NonStructFails(t *testing.T) {
	if _, err := ToMap("not a struct"); err == nil {
		t.Error("ToMap với giá trị không phải struct/map phải trả về lỗi")
	}
}
