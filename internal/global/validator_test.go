// Package global - Test validator dùng chung phục vụ các tag validate trên model.
package global

import "testing"

func TestInitValidator(t *testing.T) {
	InitValidator()
	if Validate == nil {
		t.Fatal("InitValidator phải khởi tạo biến Validate")
	}

	type input struct {
		Email    string `validate:"omitempty,email"`
		Quantity int    `validate:"gte=0"`
	}

	if err := Validate.Struct(input{Email: "alice@example.com", Quantity: 2}); err != nil {
		t.Errorf("dữ liệu hợp lệ không được báo lỗi: %v", err)
	}
	if err := Validate.Struct(input{Email: "not-an-email"}); err == nil {
		t.Error("email sai định dạng phải báo lỗi validate")
	}
	if err := Validate.Struct(input{Quantity: -1}); err == nil {
		t.Error("số lượng âm phải báo lỗi validate")
	}
}
