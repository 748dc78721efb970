// Package utility - Test vòng tạo/giải mã JWT token.
package utility

import "testing"

func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret"
	userID := "65f1a2b3c4d5e6f7a8b9c0d1"

	tokenMap, err := CreateToken(secret, userID, "18f3a2b1", "42")
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	signed, ok := tokenMap["token"]
	if !ok || signed == "" {
		t.Fatalf("CreateToken phải trả về key \"token\", nhận: %v", tokenMap)
	}

	parsed, err := ParseToken(secret, signed)
	if err != nil {
		t.Fatalf("ParseToken trả về lỗi với token hợp lệ: %v", err)
	}
	if parsed != userID {
		t.Errorf("UserID giải mã sai: mong %q, nhận %q", userID, parsed)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenMap, err := CreateToken("secret-a", "65f1a2b3c4d5e6f7a8b9c0d1", "18f3a2b1", "7")
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	if _, err := ParseToken("secret-b", tokenMap["token"]); err == nil {
		t.Error("Token ký bằng secret khác phải bị từ chối")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "không-phải-jwt"); err == nil {
		t.Error("Chuỗi không phải JWT phải bị từ chối")
	}
}
