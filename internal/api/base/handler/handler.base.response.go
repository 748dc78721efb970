package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"interview_admin/internal/common"
)

// JSONResponse trả về JSON với Content-Type kèm charset=utf-8.
// Fiber mặc định không set charset, thiếu nó một số client hiển thị sai
// tiếng Việt trong payload.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc handler với recover. Panic trong handler vẫn phải trả
// response cho client thay vì làm rớt kết nối.
//
// Parameters:
//   - c: Fiber context
//   - handler: Hàm xử lý chính
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse chuẩn hoá response cho client theo một format thống nhất:
// lỗi *common.Error giữ nguyên status code và error code của nó, lỗi khác
// thành internal server error, thành công bọc data trong envelope chuẩn.
//
// Parameters:
//   - c: Fiber context
//   - data: Dữ liệu trả về (nil nếu chỉ báo lỗi)
//   - err: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		writeErrorResponse(c, err)
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// writeErrorResponse ghi error envelope, dùng chung cho handler và middleware
func writeErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}

	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeDatabase.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
