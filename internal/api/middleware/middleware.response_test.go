// Package middleware - Test envelope lỗi trả về từ HandleErrorResponse.
package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"sales_analytics/internal/common"
)

func errorBody(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("không đọc được body: %v", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("body không phải JSON: %v (body: %s)", err, raw)
	}
	return resp.StatusCode, payload, resp.Header.Get("Content-Type")
}

func TestHandleErrorResponse_CustomErrorKeepsStatusAndCode(t *testing.T) {
	app := fiber.New()
	app.Get("/err", func(c fiber.Ctx) error {
		return HandleErrorResponse(c, common.NewError(
			common.ErrCodeValidationInput,
			"Dữ liệu đầu vào không hợp lệ",
			common.StatusBadRequest,
			nil,
		))
	})

	status, payload, contentType := errorBody(t, app, "/err")

	if status != common.StatusBadRequest {
		t.Errorf("lỗi *common.Error phải giữ nguyên status code, nhận được %d", status)
	}
	if payload["code"] != common.ErrCodeValidationInput.Code {
		t.Errorf("code = %v, muốn %v", payload["code"], common.ErrCodeValidationInput.Code)
	}
	if payload["status"] != "error" {
		t.Errorf("status = %v, muốn %q", payload["status"], "error")
	}
	if payload["message"] != "Dữ liệu đầu vào không hợp lệ" {
		t.Errorf("message = %v, không khớp message của lỗi", payload["message"])
	}
	if !strings.Contains(contentType, "charset=utf-8") {
		t.Errorf("Content-Type phải có charset=utf-8, nhận được %q", contentType)
	}
}

func TestHandleErrorResponse_GenericErrorIs500(t *testing.T) {
	app := fiber.New()
	app.Get("/err", func(c fiber.Ctx) error {
		return HandleErrorResponse(c, fmt.Errorf("kết nối bị gián đoạn"))
	})

	status, payload, _ := errorBody(t, app, "/err")

	if status != common.StatusInternalServerError {
		t.Errorf("lỗi không phải *common.Error phải trả về 500, nhận được %d", status)
	}
	if payload["code"] != common.ErrCodeDatabase.Code {
		t.Errorf("code = %v, muốn %v", payload["code"], common.ErrCodeDatabase.Code)
	}
	if payload["status"] != "error" {
		t.Errorf("status = %v, muốn %q", payload["status"], "error")
	}
}
