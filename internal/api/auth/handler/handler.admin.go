package authhdl

import (
	"fmt"

	authdto "interview_admin/internal/api/auth/dto"
	models "interview_admin/internal/api/auth/models"
	authsvc "interview_admin/internal/api/auth/service"
	basehdl "interview_admin/internal/api/base/handler"
	"interview_admin/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler xử lý các thao tác quản trị trên người dùng (khóa, mở khóa, gán role)
type AdminHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput]
	userService *authsvc.UserService
}

// NewAdminHandler tạo instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput](userService)
	return &AdminHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleBlockUser khóa một người dùng theo email
func (h *AdminHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err := h.userService.BlockUser(c.Context(), &input)
	if err == nil {
		logger.LogCRUD("block", "users", input.Email, c, nil)
	}
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleUnBlockUser mở khóa một người dùng theo email
func (h *AdminHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err := h.userService.UnBlockUser(c.Context(), &input)
	if err == nil {
		logger.LogCRUD("unblock", "users", input.Email, c, nil)
	}
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleSetRole gán role mới cho người dùng
func (h *AdminHandler) HandleSetRole(c fiber.Ctx) error {
	var input authdto.UserSetRoleInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.SetRole(c.Context(), &input)
	if err == nil {
		logger.LogCRUD("set-role", "users", input.Email, c, nil)
	}
	h.HandleResponse(c, user, err)
	return nil
}
