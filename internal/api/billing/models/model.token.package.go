package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenPackage định nghĩa một gói token bán lẻ.
// Popular đánh dấu gói được highlight trên trang pricing.
type TokenPackage struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"single"`
	Type        string             `json:"type" bson:"type"`
	Tokens      int64              `json:"tokens" bson:"tokens"`
	Price       float64            `json:"price" bson:"price"`
	Description string             `json:"description" bson:"description"`
	Features    []string           `json:"features" bson:"features"`
	Popular     bool               `json:"popular" bson:"popular"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// TokenPackagePaginateResult đại diện cho kết quả phân trang TokenPackage
type TokenPackagePaginateResult struct {
	Page      int64          `json:"page" bson:"page"`
	Limit     int64          `json:"limit" bson:"limit"`
	ItemCount int64          `json:"itemCount" bson:"itemCount"`
	Items     []TokenPackage `json:"items" bson:"items"`
}
