package utility

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnixMilli trả về timestamp mili giây của t, làm tròn tới mili giây.
// Các field thời gian trong model đều lưu dạng này.
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixMilli()
}

// Contains kiểm tra item có xuất hiện trong slice hay không
func Contains[T comparable](slice []T, item T) bool {
	for i := range slice {
		if slice[i] == item {
			return true
		}
	}
	return false
}

// String2ObjectID chuyển chuỗi hex thành ObjectID.
// Chuỗi không hợp lệ trả về NilObjectID, caller xử lý như id không tồn tại.
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}
