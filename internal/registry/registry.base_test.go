// Package registry - Test hành vi cơ bản và thread-safety của Registry.
package registry

import (
	"fmt"
	"sync"
	"testing"
)

func TestRegister(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("đăng ký key mới phải trả về isNew = true")
	}

	isNew, err = r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register ghi đè lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè key đã tồn tại phải trả về isNew = false")
	}

	got, exists := r.Get("a")
	if !exists || got != 2 {
		t.Errorf("Get sau ghi đè phải trả về giá trị mới, nhận được %d (exists=%v)", got, exists)
	}
}

func TestRegister_EmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với name rỗng phải trả về lỗi")
	}
}

func TestGet_NotFound(t *testing.T) {
	r := NewRegistry[string]()
	if _, exists := r.Get("missing"); exists {
		t.Error("Get key chưa đăng ký phải trả về exists = false")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0
	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	got, err := r.GetOrCreate("a", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lỗi: %v", err)
	}
	if got != "created" {
		t.Errorf("GetOrCreate = %q, muốn %q", got, "created")
	}

	got, err = r.GetOrCreate("a", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lần 2 lỗi: %v", err)
	}
	if got != "created" || calls != 1 {
		t.Errorf("GetOrCreate lần 2 phải trả item cũ, không gọi lại creator (calls=%d)", calls)
	}
}

func TestGetOrCreate_CreatorError(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.GetOrCreate("a", func() (string, error) {
		return "", fmt.Errorf("creator failed")
	})
	if err == nil {
		t.Error("creator lỗi thì GetOrCreate phải trả về lỗi")
	}
	if _, exists := r.Get("a"); exists {
		t.Error("creator lỗi thì không được lưu item vào registry")
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear lỗi: %v", err)
	}
	if !deleted || !cleaned {
		t.Errorf("Clear phải xóa item và gọi cleanup (deleted=%v cleaned=%v)", deleted, cleaned)
	}

	deleted, err = r.Clear("a", nil)
	if err != nil {
		t.Fatalf("Clear key đã xóa lỗi: %v", err)
	}
	if deleted {
		t.Error("Clear key không tồn tại phải trả về deleted = false")
	}
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll lỗi: %v", err)
	}
	if count != 2 {
		t.Errorf("ClearAll phải trả về số item đã xóa, nhận được %d", count)
	}
	if _, exists := r.Get("a"); exists {
		t.Error("sau ClearAll registry phải rỗng")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Register(fmt.Sprintf("key-%d", i%10), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			r.Get(fmt.Sprintf("key-%d", i%10))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		if _, exists := r.Get(fmt.Sprintf("key-%d", i)); !exists {
			t.Errorf("key-%d phải tồn tại sau khi register song song", i)
		}
	}
}
