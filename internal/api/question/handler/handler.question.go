// Package questionhdl - handler câu hỏi phỏng vấn: CRUD, batch insert,
// sinh câu hỏi bằng LLM và sinh giọng đọc.
package questionhdl

import (
	"fmt"

	aidto "interview_admin/internal/api/ai/dto"
	aisvc "interview_admin/internal/api/ai/service"
	basehdl "interview_admin/internal/api/base/handler"
	questiondto "interview_admin/internal/api/question/dto"
	models "interview_admin/internal/api/question/models"
	questionsvc "interview_admin/internal/api/question/service"
	"interview_admin/internal/common"
	"interview_admin/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionHandler xử lý các request liên quan đến câu hỏi phỏng vấn
type QuestionHandler struct {
	*basehdl.BaseHandler[models.Question, questiondto.QuestionCreateInput, questiondto.QuestionUpdateInput]
	bulkService       *questionsvc.BulkInsertService
	voiceService      *questionsvc.VoiceService
	generationService *aisvc.GenerationService
}

// NewQuestionHandler tạo instance mới của QuestionHandler
func NewQuestionHandler() (*QuestionHandler, error) {
	questionService, err := questionsvc.NewQuestionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create question service: %v", err)
	}
	bulkService, err := questionsvc.NewBulkInsertService()
	if err != nil {
		return nil, fmt.Errorf("failed to create bulk insert service: %v", err)
	}
	voiceService, err := questionsvc.NewVoiceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create voice service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Question, questiondto.QuestionCreateInput, questiondto.QuestionUpdateInput](questionService)
	return &QuestionHandler{
		BaseHandler:       baseHandler,
		bulkService:       bulkService,
		voiceService:      voiceService,
		generationService: aisvc.NewGenerationService(),
	}, nil
}

// HandleInsertBulk insert một batch câu hỏi do người dùng soạn sẵn.
// Trả 201 khi toàn bộ thành công, 207 khi có item lỗi (kết quả vẫn chứa các item thành công).
func (h *QuestionHandler) HandleInsertBulk(c fiber.Ctx) error {
	var input questiondto.InsertBulkInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	result, err := h.bulkService.InsertBulk(c.Context(), input.Questions)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("insert-bulk", "questions", "", c, map[string]interface{}{
		"total":    result.Total,
		"inserted": result.Inserted,
		"failed":   len(result.Errors),
	})
	respondBulk(c, result.Success, result)
	return nil
}

// HandleCreateBulk sinh câu hỏi bằng LLM rồi insert toàn bộ qua batch insert.
// Count mặc định 10, tối đa 20. Lỗi provider hoặc parse trả về nguyên vẹn,
// chưa có câu hỏi nào được lưu trong trường hợp đó.
func (h *QuestionHandler) HandleCreateBulk(c fiber.Ctx) error {
	var input aidto.GenerateQuestionsInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if input.Count == 0 {
		input.Count = aidto.DefaultGenerateCount
	}

	generated, err := h.generationService.Generate(c.Context(), input.Level, input.Type, input.Count)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	candidates := make([]questiondto.QuestionCreateInput, 0, len(generated))
	for _, g := range generated {
		candidates = append(candidates, questiondto.QuestionCreateInput{
			CategoryID: input.CategoryID,
			Level:      input.Level,
			Type:       input.Type,
			Content:    g.Content,
			FollowUp:   g.FollowUp,
		})
	}

	result, err := h.bulkService.InsertBulk(c.Context(), candidates)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("create-bulk", "questions", "", c, map[string]interface{}{
		"category_id": input.CategoryID,
		"level":       input.Level,
		"type":        input.Type,
		"total":       result.Total,
		"created":     result.Inserted,
		"failed":      len(result.Errors),
	})
	respondBulk(c, result.Success, &questiondto.BulkGenerateResult{
		Success:   result.Success,
		Created:   result.Inserted,
		Total:     result.Total,
		Questions: result.Questions,
		Errors:    result.Errors,
	})
	return nil
}

// HandleGenerateVoice sinh giọng đọc cho câu hỏi đã lưu (questionId)
// hoặc cho đoạn văn bản tự do (text)
func (h *QuestionHandler) HandleGenerateVoice(c fiber.Ctx) error {
	var input questiondto.GenerateVoiceInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if input.QuestionID != "" {
		questionID, err := primitive.ObjectIDFromHex(input.QuestionID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "questionId không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		result, err := h.voiceService.GenerateForQuestion(c.Context(), questionID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("generate-voice", "questions", input.QuestionID, c, nil)
		h.HandleResponse(c, result, nil)
		return nil
	}

	if input.Text == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Cần truyền questionId hoặc text", common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.voiceService.GenerateForText(c.Context(), input.Text)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, result, nil)
	return nil
}

// respondBulk trả kết quả batch theo ngữ nghĩa multi-status:
// 201 khi toàn bộ item thành công, 207 khi có item lỗi
func respondBulk(c fiber.Ctx, allOK bool, payload interface{}) {
	status := common.StatusCreated
	if !allOK {
		status = common.StatusMultiState
	}
	basehdl.JSONResponse(c, status, payload)
}
