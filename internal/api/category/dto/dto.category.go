// Package categorydto - các cấu trúc đầu vào cho domain category.
package categorydto

// CategoryCreateInput đầu vào tạo mới danh mục.
// Cờ readiness không nhận từ đầu vào — luôn khởi tạo false và do recompute quản lý.
type CategoryCreateInput struct {
	Title       string `json:"title" validate:"required" maxLength:"200"`
	Description string `json:"description" maxLength:"2000"`
	ImgURL      string `json:"imgUrl" validate:"omitempty,url"`
}

// CategoryUpdateInput đầu vào cập nhật danh mục (partial update)
type CategoryUpdateInput struct {
	Title       string `json:"title,omitempty" maxLength:"200"`
	Description string `json:"description,omitempty" maxLength:"2000"`
	ImgURL      string `json:"imgUrl,omitempty" validate:"omitempty,url"`
}

// CategorySetPublishedInput đầu vào bật/tắt trạng thái published của danh mục
type CategorySetPublishedInput struct {
	Published *bool `json:"published" validate:"required"`
}
