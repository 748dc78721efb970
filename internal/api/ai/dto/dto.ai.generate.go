// Package aidto - các cấu trúc đầu vào cho domain ai.
package aidto

// Giới hạn số câu hỏi sinh trong một lần gọi.
const (
	DefaultGenerateCount = 10
	MaxGenerateCount     = 20
)

// GenerateQuestionsInput đầu vào sinh câu hỏi hàng loạt bằng LLM.
// Count mặc định 10, tối đa 20 — vượt quá bị từ chối thay vì cắt bớt.
type GenerateQuestionsInput struct {
	CategoryID string `json:"categoryId" validate:"required"`
	Level      string `json:"level" validate:"required,oneof=junior mid middle senior"`
	Type       string `json:"type" validate:"required,oneof=intro core closing"`
	Count      int    `json:"count,omitempty" validate:"omitempty,min=1,max=20"`
}
