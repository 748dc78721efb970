package questiondto

import (
	models "interview_admin/internal/api/question/models"
)

// InsertBulkInput đầu vào batch insert câu hỏi (candidate do người dùng soạn)
type InsertBulkInput struct {
	Questions []QuestionCreateInput `json:"questions" validate:"required,min=1"`
}

// BulkGenerateResult tổng hợp kết quả của một lần sinh + insert câu hỏi hàng loạt.
// Khác BulkInsertResult ở tên field "created" (giữ tương thích với client hiện có).
type BulkGenerateResult struct {
	Success   bool              `json:"success"`
	Created   int               `json:"created"`
	Total     int               `json:"total"`
	Questions []models.Question `json:"questions"`
	Errors    []BulkInsertError `json:"errors,omitempty"`
}

// GenerateVoiceInput đầu vào sinh giọng đọc.
// Truyền QuestionID để sinh cho câu hỏi đã lưu (audioUrl được gán vào câu hỏi),
// hoặc Text để sinh cho đoạn văn bản tự do.
type GenerateVoiceInput struct {
	QuestionID string `json:"questionId,omitempty"`
	Text       string `json:"text,omitempty" maxLength:"1000"`
}
