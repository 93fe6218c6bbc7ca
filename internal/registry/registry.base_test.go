// Package registry - Test registry pattern generic.
package registry

import (
	"errors"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("Lần đăng ký đầu tiên phải là item mới")
	}

	v, exists := r.Get("a")
	if !exists || v != 1 {
		t.Errorf("Get(a) = (%v, %v), muốn (1, true)", v, exists)
	}

	// Ghi đè item cũ
	isNew, err = r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if isNew {
		t.Error("Đăng ký lại cùng name phải là ghi đè, không phải item mới")
	}
	v, _ = r.Get("a")
	if v != 2 {
		t.Errorf("Giá trị sau ghi đè = %v, muốn 2", v)
	}
}

func TestRegister_EmptyName(t *testing.T) {
	r := NewRegistry[string]()
	if _, err := r.Register("", "x"); err == nil {
		t.Error("Register với name rỗng phải trả lỗi")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	v, err := r.GetOrCreate("key", func() (string, error) { return "created", nil })
	if err != nil {
		t.Fatalf("GetOrCreate lỗi: %v", err)
	}
	if v != "created" {
		t.Errorf("GetOrCreate = %q, muốn created", v)
	}

	// Lần hai không gọi creator nữa
	v, err = r.GetOrCreate("key", func() (string, error) {
		t.Error("creator không được gọi khi item đã tồn tại")
		return "", nil
	})
	if err != nil || v != "created" {
		t.Errorf("GetOrCreate lần hai = (%q, %v), muốn (created, nil)", v, err)
	}

	// Creator lỗi thì không lưu gì
	_, err = r.GetOrCreate("bad", func() (string, error) { return "", errors.New("boom") })
	if err == nil {
		t.Error("GetOrCreate phải propagate lỗi từ creator")
	}
	if _, exists := r.Get("bad"); exists {
		t.Error("Item không được lưu khi creator lỗi")
	}
}

func TestClearAndClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	cleaned := 0
	deleted, err := r.Clear("a", func(v int) error {
		cleaned = v
		return nil
	})
	if err != nil || !deleted {
		t.Fatalf("Clear(a) = (%v, %v), muốn (true, nil)", deleted, err)
	}
	if cleaned != 1 {
		t.Errorf("Cleanup phải nhận giá trị của item, got %d", cleaned)
	}
	if _, exists := r.Get("a"); exists {
		t.Error("Item a phải bị xóa")
	}

	deleted, err = r.Clear("missing", nil)
	if err != nil || deleted {
		t.Errorf("Clear item không tồn tại = (%v, %v), muốn (false, nil)", deleted, err)
	}

	count, err := r.ClearAll(nil)
	if err != nil || count != 1 {
		t.Errorf("ClearAll = (%d, %v), muốn (1, nil)", count, err)
	}
	if len(r.Names()) != 0 {
		t.Error("Registry phải rỗng sau ClearAll")
	}
}
