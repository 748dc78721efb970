// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "interview_admin/internal/api/auth/dto"
	models "interview_admin/internal/api/auth/models"
	basesvc "interview_admin/internal/api/base/service"
	"interview_admin/internal/common"
	"interview_admin/internal/global"
	"interview_admin/internal/utility"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới với email và mật khẩu.
// Mật khẩu được hash bằng bcrypt trước khi lưu. Role mặc định là "user".
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã tồn tại chưa
	if _, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil); err == nil {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Email đã được sử dụng", common.StatusConflict, nil)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeAuthCredentials, "Email đã được sử dụng", common.StatusConflict, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Register: Đăng ký thành công")
	created.Password = ""
	return &created, nil
}

// Login đăng nhập người dùng bằng email và mật khẩu.
// Trả về user kèm JWT token mới. Token cũ bị thay thế.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token": tokenMap["token"],
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("Login: Đăng nhập thành công")
	updatedUser.Password = ""
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token hiện tại)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Unset: map[string]interface{}{
			"token": "",
		},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// ChangeInfo cập nhật thông tin hiển thị của người dùng
func (s *UserService) ChangeInfo(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangeInfoInput) (*models.User, error) {
	updateData := &basesvc.UpdateData{Set: map[string]interface{}{}}
	if input.Name != "" {
		updateData.Set["name"] = input.Name
	}
	if len(updateData.Set) == 0 {
		user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
		if err != nil {
			return nil, err
		}
		user.Password = ""
		user.Token = ""
		return &user, nil
	}

	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	if err != nil {
		return nil, err
	}
	updatedUser.Password = ""
	updatedUser.Token = ""
	return &updatedUser, nil
}

// SetRole gán role mới cho người dùng theo email
func (s *UserService) SetRole(ctx context.Context, input *authdto.UserSetRoleInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"role": input.Role}}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	updatedUser.Password = ""
	return &updatedUser, nil
}

// BlockUser khóa người dùng theo email, ghi chú lý do khóa.
// Token hiện tại bị thu hồi để chặn các session đang mở.
func (s *UserService) BlockUser(ctx context.Context, input *authdto.BlockUserInput) error {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   true,
			"blockNote": input.Note,
		},
		Unset: map[string]interface{}{
			"token": "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	return err
}

// UnBlockUser mở khóa người dùng theo email
func (s *UserService) UnBlockUser(ctx context.Context, input *authdto.UnBlockUserInput) error {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   false,
			"blockNote": "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	return err
}

// EnsureAdmin đảm bảo tồn tại một tài khoản admin với email cho trước.
// Dùng khi khởi tạo hệ thống lần đầu (InitMode). Nếu user đã tồn tại thì chỉ nâng role lên admin.
func (s *UserService) EnsureAdmin(ctx context.Context, email string, password string) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": email}, nil)
	if err == nil {
		if user.Role == models.RoleAdmin {
			return &user, nil
		}
		updateData := &basesvc.UpdateData{Set: map[string]interface{}{"role": models.RoleAdmin}}
		updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
		if err != nil {
			return nil, err
		}
		return &updatedUser, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, admin)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"email": email}).Info("EnsureAdmin: Đã tạo tài khoản admin khởi tạo")
	return &created, nil
}
