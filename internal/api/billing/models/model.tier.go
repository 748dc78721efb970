// Package models - các model thuộc domain billing: Tier và TokenPackage.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tier định nghĩa một gói subscription hiển thị trên trang pricing
type Tier struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" index:"single"`
	Price       float64            `json:"price" bson:"price"`
	Benefits    []string           `json:"benefits" bson:"benefits"`
	Quota       int64              `json:"quota" bson:"quota"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// TierPaginateResult đại diện cho kết quả phân trang Tier
type TierPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []Tier `json:"items" bson:"items"`
}
