// Package questiondto - các cấu trúc đầu vào/đầu ra cho domain question.
package questiondto

import (
	models "interview_admin/internal/api/question/models"
)

// QuestionCreateInput đầu vào tạo mới câu hỏi (một candidate trong batch insert).
// Level chấp nhận "middle" như bí danh của "mid", được chuẩn hóa ở tầng service.
type QuestionCreateInput struct {
	CategoryID string `json:"categoryId" validate:"required" transform:"str_objectid"`
	Level      string `json:"level" validate:"required,oneof=junior mid middle senior"`
	Type       string `json:"type" validate:"required,oneof=intro core closing"`
	Content    string `json:"content" validate:"required" maxLength:"1000"`
	FollowUp   bool   `json:"followUp"`
	AudioURL   string `json:"audioUrl,omitempty" validate:"omitempty,url"`
}

// QuestionUpdateInput đầu vào cập nhật câu hỏi (partial update)
type QuestionUpdateInput struct {
	Level    string `json:"level,omitempty" validate:"omitempty,oneof=junior mid middle senior"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=intro core closing"`
	Content  string `json:"content,omitempty" maxLength:"1000"`
	AudioURL string `json:"audioUrl,omitempty" validate:"omitempty,url"`
}

// BulkInsertError mô tả một candidate insert thất bại trong batch.
// Index là vị trí của candidate trong danh sách đầu vào ban đầu.
type BulkInsertError struct {
	Index    int                  `json:"index"`
	Error    string               `json:"error"`
	Question *QuestionCreateInput `json:"question,omitempty"`
}

// BulkInsertResult tổng hợp kết quả của một batch insert.
// Success chỉ true khi không có candidate nào thất bại.
// Kết quả này không được lưu trữ — tạo mới cho mỗi lần gọi và trả thẳng về caller.
type BulkInsertResult struct {
	Success   bool              `json:"success"`
	Inserted  int               `json:"inserted"`
	Total     int               `json:"total"`
	Questions []models.Question `json:"questions"`
	Errors    []BulkInsertError `json:"errors,omitempty"`
}
