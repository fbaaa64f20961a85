package global

import (
	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo validator dùng chung cho toàn bộ ứng dụng.
// Các rule đi theo tag `validate` trên model/dto (required, email, gte...);
// validate nghiệp vụ riêng (dòng CSV, period của trend) nằm ở service tương ứng.
func InitValidator() {
	Validate = validator.New()
}
