// Package billingdto - các cấu trúc đầu vào cho domain billing.
package billingdto

// TierCreateInput đầu vào tạo mới gói subscription
type TierCreateInput struct {
	Title       string   `json:"title" validate:"required" maxLength:"100"`
	Price       float64  `json:"price" validate:"required,gte=1"`
	Benefits    []string `json:"benefits" validate:"required,min=1,dive,required"`
	Quota       int64    `json:"quota" validate:"required,gte=1"`
	Description string   `json:"description" validate:"required" maxLength:"500"`
}

// TierUpdateInput đầu vào cập nhật gói subscription (partial update)
type TierUpdateInput struct {
	Title       string   `json:"title,omitempty" maxLength:"100"`
	Price       float64  `json:"price,omitempty" validate:"omitempty,gte=1"`
	Benefits    []string `json:"benefits,omitempty" validate:"omitempty,min=1,dive,required"`
	Quota       int64    `json:"quota,omitempty" validate:"omitempty,gte=1"`
	Description string   `json:"description,omitempty" maxLength:"500"`
}

// TokenPackageCreateInput đầu vào tạo mới gói token
type TokenPackageCreateInput struct {
	Name        string   `json:"name" validate:"required" maxLength:"100"`
	Type        string   `json:"type" validate:"required" maxLength:"50"`
	Tokens      int64    `json:"tokens" validate:"gte=0"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description" validate:"required" maxLength:"500"`
	Features    []string `json:"features" validate:"required,min=1,dive,required"`
	Popular     bool     `json:"popular"`
}

// TokenPackageUpdateInput đầu vào cập nhật gói token (partial update)
type TokenPackageUpdateInput struct {
	Name        string   `json:"name,omitempty" maxLength:"100"`
	Type        string   `json:"type,omitempty" maxLength:"50"`
	Tokens      int64    `json:"tokens,omitempty" validate:"omitempty,gte=0"`
	Price       float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description string   `json:"description,omitempty" maxLength:"500"`
	Features    []string `json:"features,omitempty" validate:"omitempty,min=1,dive,required"`
}
