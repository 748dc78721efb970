package questionsvc

import (
	"context"
	"fmt"

	questiondto "interview_admin/internal/api/question/dto"
	models "interview_admin/internal/api/question/models"
	"interview_admin/internal/common"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// questionCreator là contract tạo từng câu hỏi mà batch insert sử dụng
type questionCreator interface {
	Create(ctx context.Context, input *questiondto.QuestionCreateInput) (*models.Question, error)
}

// readinessRecomputer tính lại cờ readiness cho một cặp (danh mục, level)
type readinessRecomputer interface {
	Recompute(ctx context.Context, categoryID primitive.ObjectID, level string) error
}

// BulkInsertService điều phối batch insert câu hỏi.
// Mỗi candidate được insert độc lập và tuần tự theo thứ tự đầu vào — một item lỗi
// không hủy batch, lỗi được ghi nhận kèm index gốc và batch tiếp tục.
// Không có transaction bao trùm batch: item đã insert vẫn giữ nguyên khi item sau lỗi.
type BulkInsertService struct {
	questions questionCreator
	readiness readinessRecomputer
}

// NewBulkInsertService tạo mới BulkInsertService với các service thật
func NewBulkInsertService() (*BulkInsertService, error) {
	questionService, err := NewQuestionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create question service: %v", err)
	}
	readinessService, err := NewReadinessService()
	if err != nil {
		return nil, fmt.Errorf("failed to create readiness service: %v", err)
	}

	return &BulkInsertService{
		questions: questionService,
		readiness: readinessService,
	}, nil
}

// categoryLevelPair là một cặp (danh mục, level) được chạm bởi insert thành công
type categoryLevelPair struct {
	categoryID primitive.ObjectID
	level      string
}

// InsertBulk insert lần lượt từng candidate và tổng hợp kết quả.
// Batch rỗng bị từ chối ngay, chưa gọi store lần nào.
// Sau khi chạy hết batch, mỗi cặp (danh mục, level) distinct trong số các insert
// thành công được recompute đúng một lần; lỗi recompute chỉ log, không trả về caller.
func (s *BulkInsertService) InsertBulk(ctx context.Context, inputs []questiondto.QuestionCreateInput) (*questiondto.BulkInsertResult, error) {
	if len(inputs) == 0 {
		return nil, common.ErrEmptyBatch
	}

	result := &questiondto.BulkInsertResult{
		Total:     len(inputs),
		Questions: []models.Question{},
	}

	seenPairs := map[categoryLevelPair]bool{}
	var touchedPairs []categoryLevelPair

	for i := range inputs {
		input := inputs[i]
		question, err := s.questions.Create(ctx, &input)
		if err != nil {
			result.Errors = append(result.Errors, questiondto.BulkInsertError{
				Index:    i,
				Error:    err.Error(),
				Question: &input,
			})
			continue
		}

		result.Questions = append(result.Questions, *question)
		result.Inserted++

		pair := categoryLevelPair{categoryID: question.CategoryID, level: question.Level}
		if !seenPairs[pair] {
			seenPairs[pair] = true
			touchedPairs = append(touchedPairs, pair)
		}
	}

	for _, pair := range touchedPairs {
		if err := s.readiness.Recompute(ctx, pair.categoryID, pair.level); err != nil {
			logrus.WithFields(logrus.Fields{
				"category_id": pair.categoryID.Hex(),
				"level":       pair.level,
				"error":       err.Error(),
			}).Warn("InsertBulk: Lỗi recompute readiness, bỏ qua")
		}
	}

	result.Success = len(result.Errors) == 0
	return result, nil
}
