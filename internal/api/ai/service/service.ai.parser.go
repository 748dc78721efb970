// Package aisvc - gọi LLM sinh câu hỏi và parse phản hồi.
package aisvc

import (
	"encoding/json"
	"fmt"
	"strings"

	"interview_admin/internal/common"
)

// GeneratedQuestion là một candidate câu hỏi do LLM sinh ra, chưa được lưu
type GeneratedQuestion struct {
	Content  string `json:"content"`
	FollowUp bool   `json:"followUp"`
}

// ParseGenerated parse phản hồi thô của LLM thành danh sách candidate.
// Hàm thuần, không side effect. Phản hồi có thể bọc trong code fence (```json / ```),
// fence được bóc trước khi decode. Lỗi decode hoặc số lượng không khớp expectedCount
// đều trả về ParseError kèm nguyên nhân gốc.
func ParseGenerated(raw string, expectedCount int) ([]GeneratedQuestion, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, common.NewError(common.ErrCodeAIParse, "Phản hồi của AI rỗng", common.StatusBadGateway, nil)
	}

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, common.NewError(common.ErrCodeAIParse,
			"Không parse được phản hồi của AI thành JSON array", common.StatusBadGateway, err.Error())
	}

	if len(questions) != expectedCount {
		return nil, common.NewError(common.ErrCodeAIParse,
			fmt.Sprintf("AI trả về %d câu hỏi, yêu cầu %d", len(questions), expectedCount), common.StatusBadGateway, nil)
	}

	return questions, nil
}

// stripCodeFences bóc các marker code fence markdown khỏi phản hồi
func stripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
