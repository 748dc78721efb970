// Package categoryhdl - handler danh mục câu hỏi.
package categoryhdl

import (
	"fmt"

	basehdl "interview_admin/internal/api/base/handler"
	categorydto "interview_admin/internal/api/category/dto"
	models "interview_admin/internal/api/category/models"
	categorysvc "interview_admin/internal/api/category/service"
	"interview_admin/internal/common"
	"interview_admin/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryHandler xử lý các request CRUD danh mục câu hỏi
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, categorydto.CategoryCreateInput, categorydto.CategoryUpdateInput]
	categoryService *categorysvc.CategoryService
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := categorysvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Category, categorydto.CategoryCreateInput, categorydto.CategoryUpdateInput](categoryService)
	return &CategoryHandler{
		BaseHandler:     baseHandler,
		categoryService: categoryService,
	}, nil
}

// HandleSetPublished bật/tắt trạng thái published của một danh mục
func (h *CategoryHandler) HandleSetPublished(c fiber.Ctx) error {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID danh mục không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	var input categorydto.CategorySetPublishedInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	category, err := h.categoryService.SetPublished(c.Context(), objID, *input.Published)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	logger.LogCRUD("set-published", "categories", id, c, map[string]interface{}{"published": *input.Published})
	h.HandleResponse(c, category, nil)
	return nil
}
