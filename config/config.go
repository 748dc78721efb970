package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo (seed admin + dữ liệu mặc định)
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Tài khoản admin mặc định (chỉ dùng khi INITMODE=true)
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@localhost"` // Email admin mặc định
	AdminPassword string `env:"ADMIN_PASSWORD"`                           // Mật khẩu admin mặc định (bắt buộc khi INITMODE=true)

	// OpenAI Configuration (sinh câu hỏi hàng loạt)
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`                    // API key cho OpenAI (hoặc dịch vụ tương thích)
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`                   // Base URL thay thế (optional, dùng cho proxy/self-host)
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`  // Model sinh câu hỏi

	// ElevenLabs Configuration (text-to-speech)
	ElevenLabsAPIKey  string `env:"ELEVENLABS_API_KEY"`                                       // API key ElevenLabs
	ElevenLabsVoiceID string `env:"ELEVENLABS_VOICE_ID" envDefault:"hpp4J3VqNfWAUOO0d1Us"`    // Voice ID mặc định
	ElevenLabsModelID string `env:"ELEVENLABS_MODEL_ID" envDefault:"eleven_multilingual_v2"`  // Model TTS

	// Cloudinary Configuration (upload file audio)
	CloudinaryURL    string `env:"CLOUDINARY_URL"`                                  // cloudinary://<api_key>:<api_secret>@<cloud_name>
	CloudinaryFolder string `env:"CLOUDINARY_FOLDER" envDefault:"question-audio"`   // Folder chứa audio câu hỏi

	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env, đi dần lên thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", envName))
			return envPath
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
