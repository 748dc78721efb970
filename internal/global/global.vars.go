package global

import (
	"interview_admin/config"
	"interview_admin/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng quản trị
	Categories    string // Tên collection cho danh mục câu hỏi
	Questions     string // Tên collection cho câu hỏi phỏng vấn
	Tiers         string // Tên collection cho gói subscription
	TokenPackages string // Tên collection cho gói token
}

// Các biến toàn cục
var Validate *validator.Validate                          // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                         // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration            // Cấu hình của server
var MongoDB_ColNames = *new(MongoDB_CollectionName)       // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
