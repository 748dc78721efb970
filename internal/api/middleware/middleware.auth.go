package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "interview_admin/internal/api/auth/models"
	authsvc "interview_admin/internal/api/auth/service"
	"interview_admin/internal/common"
	"interview_admin/internal/global"
	"interview_admin/internal/logger"
	"interview_admin/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &AuthManager{
		UserCRUD: userService,
		// Cache với thời gian sống 5 phút và chu kỳ dọn dẹp 10 phút
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// findUserByToken tìm user theo token, ưu tiên cache trước database
func (am *AuthManager) findUserByToken(ctx context.Context, token string) (*models.User, error) {
	cacheKey := "auth_user:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		if user, ok := cached.(models.User); ok {
			return &user, nil
		}
	}

	user, err := am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		return nil, err
	}

	am.Cache.Set(cacheKey, user)
	return &user, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Token phải là JWT hợp lệ và còn hiệu lực (còn gắn với user trong database).
// Nếu requireRoles không rỗng, role của user phải nằm trong danh sách.
func AuthMiddleware(requireRoles ...string) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Auth: Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Xác thực chữ ký JWT trước khi chạm vào database
		if _, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token); err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Token phải còn gắn với user (logout hoặc login mới sẽ thu hồi token cũ)
		user, err := authManager.findUserByToken(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("Auth: Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", *user)

		// Nếu không yêu cầu role cụ thể, chỉ cần xác thực là đủ
		if len(requireRoles) == 0 {
			return c.Next()
		}

		for _, role := range requireRoles {
			if user.Role == role {
				return c.Next()
			}
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"path":      c.Path(),
			"user_id":   user.ID.Hex(),
			"user_role": user.Role,
			"required":  requireRoles,
		}).Warn("Auth: Insufficient role")
		HandleErrorResponse(c, common.ErrRoleForbidden)
		return nil
	}
}
