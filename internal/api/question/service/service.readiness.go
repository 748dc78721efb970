package questionsvc

import (
	"context"
	"errors"
	"fmt"

	categorymodels "interview_admin/internal/api/category/models"
	categorysvc "interview_admin/internal/api/category/service"
	"interview_admin/internal/common"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReadyThreshold là số câu hỏi tối thiểu để bật cờ readiness cho một cặp (danh mục, level)
const ReadyThreshold = 15

// questionCounter đếm số câu hỏi khớp filter
type questionCounter interface {
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

// categoryFlagStore đọc danh mục và bật cờ readiness.
// Category Store là nơi duy nhất ghi cờ readiness.
type categoryFlagStore interface {
	FindOneById(ctx context.Context, id primitive.ObjectID) (categorymodels.Category, error)
	MarkLevelReady(ctx context.Context, categoryID primitive.ObjectID, level string) (*categorymodels.Category, error)
}

// ReadinessService tính lại cờ readiness của danh mục theo từng level.
// Cờ readiness là cache dẫn xuất từ số lượng câu hỏi: có thể trễ so với số thực,
// chỉ bật lên chứ không bao giờ tắt xuống (monotonic), và việc tính lại là advisory —
// caller bắt lỗi và log, không bao giờ trả lỗi ra ngoài.
type ReadinessService struct {
	questions  questionCounter
	categories categoryFlagStore
	threshold  int64
}

// NewReadinessService tạo mới ReadinessService với ngưỡng mặc định
func NewReadinessService() (*ReadinessService, error) {
	questionService, err := NewQuestionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create question service: %v", err)
	}
	categoryService, err := categorysvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	return &ReadinessService{
		questions:  questionService,
		categories: categoryService,
		threshold:  ReadyThreshold,
	}, nil
}

// Recompute đếm số câu hỏi của cặp (categoryID, level) và bật cờ readiness nếu đạt ngưỡng.
// Dưới ngưỡng hoặc danh mục không tồn tại là trường hợp bình thường, không trả lỗi.
// Không có nhánh nào tắt cờ — câu hỏi bị xóa sau đó không hạ cờ xuống.
// Hai lần gọi đồng thời có thể cùng ghi cờ, chấp nhận được vì phép ghi idempotent.
func (s *ReadinessService) Recompute(ctx context.Context, categoryID primitive.ObjectID, level string) error {
	normalized, ok := categorymodels.NormalizeLevel(level)
	if !ok {
		return common.NewError(common.ErrCodeBusinessRecompute, "Level không hợp lệ: "+level, common.StatusBadRequest, nil)
	}

	count, err := s.questions.CountDocuments(ctx, bson.M{"categoryId": categoryID, "level": normalized})
	if err != nil {
		return common.NewError(common.ErrCodeBusinessRecompute, "Không đếm được số câu hỏi", common.StatusInternalServerError, err)
	}
	if count < s.threshold {
		return nil
	}

	category, err := s.categories.FindOneById(ctx, categoryID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return common.NewError(common.ErrCodeBusinessRecompute, "Không đọc được danh mục", common.StatusInternalServerError, err)
	}

	flagKey, _ := categorymodels.LevelFlagKey(normalized)
	if category.Level.IsReady(flagKey) {
		// Cờ đã bật, không cần ghi lại
		return nil
	}

	if _, err := s.categories.MarkLevelReady(ctx, categoryID, normalized); err != nil {
		return common.NewError(common.ErrCodeBusinessRecompute, "Không cập nhật được cờ readiness", common.StatusInternalServerError, err)
	}

	logrus.WithFields(logrus.Fields{
		"category_id": categoryID.Hex(),
		"level":       normalized,
		"count":       count,
	}).Info("Recompute: Danh mục đạt ngưỡng readiness")
	return nil
}
