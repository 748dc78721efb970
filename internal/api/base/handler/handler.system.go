package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"interview_admin/internal/common"
	"interview_admin/internal/global"
)

// SystemHandler xử lý các route hệ thống (health check)
type SystemHandler struct {
	*BaseHandler[interface{}, interface{}, interface{}]
}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{
		BaseHandler: &BaseHandler[interface{}, interface{}, interface{}]{},
	}, nil
}

// HandleHealth kiểm tra tình trạng API và kết nối MongoDB.
// Database lỗi trả 503 với status degraded, còn lại trả 200.
// @Router /system/health [get]
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	services := fiber.Map{"api": "ok"}
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	}

	dbStatus, dbErr := checkDatabase()
	services["database"] = dbStatus
	if dbErr != nil {
		healthData["status"] = "degraded"
		healthData["database_error"] = dbErr.Error()
		return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"code":    common.StatusServiceUnavailable,
			"message": "Hệ thống đang gặp sự cố",
			"data":    healthData,
			"status":  "error",
		})
	}
	if dbStatus != "ok" {
		healthData["status"] = "degraded"
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    healthData,
		"status":  "success",
	})
}

// checkDatabase ping MongoDB với timeout ngắn để health check không treo
func checkDatabase() (string, error) {
	if global.MongoDB_Session == nil {
		return "not_initialized", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
		return "error", err
	}
	return "ok", nil
}
