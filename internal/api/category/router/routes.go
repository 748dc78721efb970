// Package router đăng ký các route thuộc domain category.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	categoryhdl "interview_admin/internal/api/category/handler"
	"interview_admin/internal/api/middleware"
	apirouter "interview_admin/internal/api/router"
)

// Register đăng ký các route danh mục câu hỏi lên v1.
// CRUD đầy đủ; ghi yêu cầu quyền admin, đọc chỉ yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := categoryhdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadWriteConfig)

	adminMiddleware := middleware.AuthMiddleware("admin")
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "POST", "/set-published/:id", []fiber.Handler{adminMiddleware}, categoryHandler.HandleSetPublished)
	return nil
}
