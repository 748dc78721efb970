package main

import (
	"context"
	"time"

	authsvc "interview_admin/internal/api/auth/service"
	"interview_admin/internal/global"
	"interview_admin/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định khi chạy ở chế độ INITMODE.
// Hiện tại chỉ gồm tài khoản admin đầu tiên — các dữ liệu nghiệp vụ
// (danh mục, câu hỏi, gói) do admin tự tạo qua API.
func InitDefaultData() {
	log := logger.GetAppLogger()

	cfg := global.MongoDB_ServerConfig
	if !cfg.InitMode {
		log.Info("INITMODE disabled, skipping default data initialization")
		return
	}

	log.Info("🔄 [INIT] Starting InitDefaultData...")

	if cfg.AdminPassword == "" {
		log.Fatalf("INITMODE=true requires ADMIN_PASSWORD to be set")
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := userService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}

	log.Infof("✅ [INIT] Admin account ready (email: %s, id: %s)", admin.Email, admin.ID.Hex())
}
