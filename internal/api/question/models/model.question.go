// Package models - model câu hỏi phỏng vấn (Question).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại câu hỏi trong một buổi phỏng vấn.
const (
	TypeIntro   = "intro"
	TypeCore    = "core"
	TypeClosing = "closing"
)

// ValidType kiểm tra type câu hỏi có hợp lệ không
func ValidType(questionType string) bool {
	switch questionType {
	case TypeIntro, TypeCore, TypeClosing:
		return true
	default:
		return false
	}
}

// MaxContentLength là độ dài tối đa của nội dung câu hỏi
const MaxContentLength = 1000

// Question định nghĩa mô hình câu hỏi phỏng vấn.
// Mỗi câu hỏi thuộc đúng một danh mục, một level và một type.
// AudioURL được gán bởi bước sinh giọng đọc riêng, không qua luồng insert.
type Question struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CategoryID primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"compound:categoryId_level"`
	Level      string             `json:"level" bson:"level" index:"compound:categoryId_level"`
	Type       string             `json:"type" bson:"type" index:"single"`
	Content    string             `json:"content" bson:"content"`
	FollowUp   bool               `json:"followUp" bson:"followUp"`
	AudioURL   string             `json:"audioUrl,omitempty" bson:"audioUrl,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// QuestionPaginateResult đại diện cho kết quả phân trang Question
type QuestionPaginateResult struct {
	Page      int64      `json:"page" bson:"page"`
	Limit     int64      `json:"limit" bson:"limit"`
	ItemCount int64      `json:"itemCount" bson:"itemCount"`
	Items     []Question `json:"items" bson:"items"`
}
