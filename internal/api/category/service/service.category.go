// Package categorysvc - service danh mục câu hỏi.
package categorysvc

import (
	"context"
	"fmt"

	models "interview_admin/internal/api/category/models"
	basesvc "interview_admin/internal/api/base/service"
	"interview_admin/internal/common"
	"interview_admin/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục câu hỏi
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](categoryCollection),
	}, nil
}

// SetPublished bật/tắt trạng thái published của danh mục.
// Tách riêng khỏi partial update vì giá trị false bị ToMap loại bỏ như zero value.
func (s *CategoryService) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*models.Category, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"published": published,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MarkLevelReady bật cờ readiness của danh mục cho level cho trước.
// Chỉ bật, không bao giờ tắt — readiness là monotonic. Các cờ level khác giữ nguyên
// nhờ cập nhật theo dot-notation trên từng key của map level.
func (s *CategoryService) MarkLevelReady(ctx context.Context, categoryID primitive.ObjectID, level string) (*models.Category, error) {
	flagKey, ok := models.LevelFlagKey(level)
	if !ok {
		return nil, common.NewError(common.ErrCodeValidationInput, "Level không hợp lệ: "+level, common.StatusBadRequest, nil)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"level." + flagKey: true,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, categoryID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
