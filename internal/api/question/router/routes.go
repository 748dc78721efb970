// Package router đăng ký các route thuộc domain question.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"interview_admin/internal/api/middleware"
	questionhdl "interview_admin/internal/api/question/handler"
	apirouter "interview_admin/internal/api/router"
)

// Register đăng ký các route câu hỏi lên v1.
// CRUD đầy đủ cộng ba thao tác pipeline: insert-bulk, create-bulk và generate-voice.
// Tất cả thao tác ghi yêu cầu quyền admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	questionHandler, err := questionhdl.NewQuestionHandler()
	if err != nil {
		return fmt.Errorf("failed to create question handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/question", questionHandler, apirouter.ReadWriteConfig)

	adminMiddleware := middleware.AuthMiddleware("admin")
	apirouter.RegisterRouteWithMiddleware(v1, "/question", "POST", "/insert-bulk", []fiber.Handler{adminMiddleware}, questionHandler.HandleInsertBulk)
	apirouter.RegisterRouteWithMiddleware(v1, "/question", "POST", "/create-bulk", []fiber.Handler{adminMiddleware}, questionHandler.HandleCreateBulk)
	apirouter.RegisterRouteWithMiddleware(v1, "/question", "POST", "/generate-voice", []fiber.Handler{adminMiddleware}, questionHandler.HandleGenerateVoice)
	return nil
}
