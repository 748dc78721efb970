// Package models - model danh mục câu hỏi (Category) và các hằng số level.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các level chuẩn của câu hỏi phỏng vấn.
// "middle" được chấp nhận ở đầu vào như bí danh hiển thị của "mid".
const (
	LevelJunior = "junior"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// NormalizeLevel chuyển level đầu vào về dạng chuẩn (junior/mid/senior).
// Chấp nhận "middle" như bí danh của "mid". Trả về false nếu level không hợp lệ.
func NormalizeLevel(level string) (string, bool) {
	switch level {
	case LevelJunior, LevelMid, LevelSenior:
		return level, true
	case "middle":
		return LevelMid, true
	default:
		return "", false
	}
}

// LevelFlagKey trả về key của cờ readiness trong map level của Category.
// Map level lưu theo key hiển thị: junior/middle/senior (khác với level chuẩn "mid").
func LevelFlagKey(level string) (string, bool) {
	normalized, ok := NormalizeLevel(level)
	if !ok {
		return "", false
	}
	if normalized == LevelMid {
		return "middle", true
	}
	return normalized, true
}

// CategoryLevelFlags là các cờ readiness theo từng level.
// Cờ true nghĩa là danh mục đã có đủ câu hỏi ở level đó để sử dụng.
type CategoryLevelFlags struct {
	Junior bool `json:"junior" bson:"junior"`
	Middle bool `json:"middle" bson:"middle"`
	Senior bool `json:"senior" bson:"senior"`
}

// IsReady trả về giá trị cờ readiness theo flag key (junior/middle/senior)
func (f CategoryLevelFlags) IsReady(flagKey string) bool {
	switch flagKey {
	case "junior":
		return f.Junior
	case "middle":
		return f.Middle
	case "senior":
		return f.Senior
	default:
		return false
	}
}

// Category định nghĩa mô hình danh mục câu hỏi (ví dụ: một vị trí công việc).
// Level là cache dẫn xuất từ số lượng câu hỏi, chỉ được cập nhật bởi readiness recompute.
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty" relationship:"collection:questions,field:categoryId,msg:Không thể xóa danh mục vì còn %d câu hỏi thuộc danh mục này"`
	Title       string             `json:"title" bson:"title" index:"unique"`
	Description string             `json:"description" bson:"description"`
	ImgURL      string             `json:"imgUrl" bson:"imgUrl"`
	Published   bool               `json:"published" bson:"published" index:"single"`
	Level       CategoryLevelFlags `json:"level" bson:"level"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// CategoryPaginateResult đại diện cho kết quả phân trang Category
type CategoryPaginateResult struct {
	Page      int64      `json:"page" bson:"page"`
	Limit     int64      `json:"limit" bson:"limit"`
	ItemCount int64      `json:"itemCount" bson:"itemCount"`
	Items     []Category `json:"items" bson:"items"`
}
