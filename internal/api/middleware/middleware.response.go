package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"interview_admin/internal/common"
)

// JSONResponse trả về JSON với charset=utf-8 trong Content-Type.
// Trùng với helper bên handler package, tách riêng để tránh import cycle.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse trả error envelope cho client từ middleware.
// Lỗi *common.Error giữ status code và error code của nó, lỗi khác
// trả internal server error.
func HandleErrorResponse(c fiber.Ctx, err error) {
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
