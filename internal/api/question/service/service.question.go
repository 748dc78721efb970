// Package questionsvc - service câu hỏi phỏng vấn: CRUD, batch insert,
// readiness recompute và sinh giọng đọc.
package questionsvc

import (
	"context"
	"fmt"
	"strings"

	basesvc "interview_admin/internal/api/base/service"
	categorymodels "interview_admin/internal/api/category/models"
	questiondto "interview_admin/internal/api/question/dto"
	models "interview_admin/internal/api/question/models"
	"interview_admin/internal/common"
	"interview_admin/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionService là cấu trúc chứa các phương thức liên quan đến câu hỏi phỏng vấn
type QuestionService struct {
	*basesvc.BaseServiceMongoImpl[models.Question]
}

// NewQuestionService tạo mới QuestionService
func NewQuestionService() (*QuestionService, error) {
	questionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Questions)
	if !exist {
		return nil, fmt.Errorf("failed to get questions collection: %v", common.ErrNotFound)
	}

	return &QuestionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Question](questionCollection),
	}, nil
}

// normalizeForWrite chuẩn hóa một bản ghi trước khi ghi vào collection:
// level về từ vựng chuẩn (middle → mid), content được trim và kiểm tra
// rỗng/độ dài, type phải hợp lệ. Mọi đường ghi (Create, insert-one,
// insert-many) đều đi qua đây để level lưu trong DB luôn là từ vựng chuẩn
// mà readiness recompute đếm theo.
func normalizeForWrite(q *models.Question) error {
	level, ok := categorymodels.NormalizeLevel(q.Level)
	if !ok {
		return common.NewError(common.ErrCodeValidationInput, "Level không hợp lệ: "+q.Level, common.StatusBadRequest, nil)
	}
	q.Level = level

	if !models.ValidType(q.Type) {
		return common.NewError(common.ErrCodeValidationInput, "Type câu hỏi không hợp lệ: "+q.Type, common.StatusBadRequest, nil)
	}

	content := strings.TrimSpace(q.Content)
	if content == "" {
		return common.NewError(common.ErrCodeValidationInput, "Nội dung câu hỏi không được rỗng", common.StatusBadRequest, nil)
	}
	if len([]rune(content)) > models.MaxContentLength {
		return common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Nội dung câu hỏi vượt quá %d ký tự", models.MaxContentLength), common.StatusBadRequest, nil)
	}
	q.Content = content

	return nil
}

// normalizeUpdatePayload chuẩn hóa payload partial update ($set).
// Level và content đi qua cùng quy tắc với normalizeForWrite; các field
// không có trong $set giữ nguyên.
func normalizeUpdatePayload(data interface{}) error {
	updateData, ok := data.(*basesvc.UpdateData)
	if !ok || updateData == nil || updateData.Set == nil {
		return nil
	}

	if raw, ok := updateData.Set["level"].(string); ok {
		level, valid := categorymodels.NormalizeLevel(raw)
		if !valid {
			return common.NewError(common.ErrCodeValidationInput, "Level không hợp lệ: "+raw, common.StatusBadRequest, nil)
		}
		updateData.Set["level"] = level
	}

	if raw, ok := updateData.Set["type"].(string); ok {
		if !models.ValidType(raw) {
			return common.NewError(common.ErrCodeValidationInput, "Type câu hỏi không hợp lệ: "+raw, common.StatusBadRequest, nil)
		}
	}

	if raw, ok := updateData.Set["content"].(string); ok {
		content := strings.TrimSpace(raw)
		if content == "" {
			return common.NewError(common.ErrCodeValidationInput, "Nội dung câu hỏi không được rỗng", common.StatusBadRequest, nil)
		}
		if len([]rune(content)) > models.MaxContentLength {
			return common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Nội dung câu hỏi vượt quá %d ký tự", models.MaxContentLength), common.StatusBadRequest, nil)
		}
		updateData.Set["content"] = content
	}

	return nil
}

// InsertOne chuẩn hóa rồi ghi một câu hỏi. Override bản generic để các route
// CRUD chung cũng tuân thủ từ vựng level chuẩn như luồng batch insert.
func (s *QuestionService) InsertOne(ctx context.Context, question models.Question) (models.Question, error) {
	if err := normalizeForWrite(&question); err != nil {
		var zero models.Question
		return zero, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, question)
}

// InsertMany chuẩn hóa từng phần tử rồi ghi cả mảng. Một phần tử lỗi hủy
// cả mảng; ghi nhận lỗi theo từng item là việc của batch insert.
func (s *QuestionService) InsertMany(ctx context.Context, questions []models.Question) ([]models.Question, error) {
	for i := range questions {
		if err := normalizeForWrite(&questions[i]); err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Phần tử %d không hợp lệ", i), common.StatusBadRequest, err)
		}
	}
	return s.BaseServiceMongoImpl.InsertMany(ctx, questions)
}

// UpdateById chuẩn hóa payload $set trước khi cập nhật theo ID
func (s *QuestionService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Question, error) {
	if err := normalizeUpdatePayload(data); err != nil {
		var zero models.Question
		return zero, err
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// UpdateOne chuẩn hóa payload $set trước khi cập nhật theo filter
func (s *QuestionService) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (models.Question, error) {
	if err := normalizeUpdatePayload(update); err != nil {
		var zero models.Question
		return zero, err
	}
	return s.BaseServiceMongoImpl.UpdateOne(ctx, filter, update, opts)
}

// Create xác thực, chuẩn hóa một candidate và ghi vào collection questions.
// Đây là contract tạo từng item mà batch insert gọi lặp lại — mọi lỗi xác thực
// trả về ở đây để batch ghi nhận theo index thay vì hủy cả batch.
// CategoryID chỉ được kiểm tra định dạng, không kiểm tra tồn tại.
func (s *QuestionService) Create(ctx context.Context, input *questiondto.QuestionCreateInput) (*models.Question, error) {
	categoryID, err := primitive.ObjectIDFromHex(input.CategoryID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "categoryId không hợp lệ: "+input.CategoryID, common.StatusBadRequest, nil)
	}

	question := models.Question{
		CategoryID: categoryID,
		Level:      input.Level,
		Type:       input.Type,
		Content:    input.Content,
		FollowUp:   input.FollowUp,
		AudioURL:   input.AudioURL,
	}

	created, err := s.InsertOne(ctx, question)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// SetAudioURL gán URL audio cho câu hỏi sau khi sinh giọng đọc thành công
func (s *QuestionService) SetAudioURL(ctx context.Context, questionID primitive.ObjectID, audioURL string) (*models.Question, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"audioUrl": audioURL,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, questionID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
