// Package models chứa các kiểu dùng chung cho tầng service/repository.
package models

// PaginateResult là kết quả trả về của các truy vấn phân trang.
// Page tính từ 1; TotalPage được làm tròn lên từ Total/Limit.
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`           // Trang hiện tại
	Limit     int64 `json:"limit" bson:"limit"`         // Số mục mỗi trang
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Số mục trong trang này
	Items     []T   `json:"items" bson:"items"`         // Danh sách mục
	Total     int64 `json:"total" bson:"total"`         // Tổng số mục khớp filter
	TotalPage int64 `json:"totalPage" bson:"totalPage"` // Tổng số trang
}
