package utility

import (
	"github.com/dgrijalva/jwt-go"

	"interview_admin/internal/common"
)

// jwtClaims là payload được mã hóa trong JWT token.
type jwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token mới cho user.
//
// Parameters:
//   - secret: Khóa bí mật dùng để ký token
//   - userID: ID của user (hex string)
//   - timeHex: Thời điểm tạo token (hex string)
//   - randomNumber: Số ngẫu nhiên chống trùng token giữa các lần login
//
// Returns:
//   - map[string]string: Map chứa key "token" với giá trị là token đã ký
//   - error: Lỗi nếu ký token thất bại
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := jwtClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã và xác thực JWT token, trả về userID bên trong.
func ParseToken(secret string, tokenString string) (string, error) {
	claims := new(jwtClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrTokenInvalid
	}
	return claims.UserID, nil
}
