// Package logger cấu hình logrus cho toàn hệ thống: hai logger đặt tên
// (app cho log vận hành, audit cho log thao tác CRUD), ghi file có rotation
// qua lumberjack và ghi bất đồng bộ qua AsyncHook để không block request.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	config *LogConfig

	// rootDir là gốc project, dùng để resolve đường dẫn logs tương đối
	rootDir string
)

// Init khởi tạo hệ thống logging. cfg nil sẽ dùng cấu hình mặc định.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	rootDir = resolveRootDir()

	if err := os.MkdirAll(logDir(), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	return nil
}

// resolveRootDir xác định gốc project theo thứ tự ưu tiên:
// LOG_ROOT_DIR → đường dẫn executable (2 cấp trên cmd/server) → đi lên từ
// working directory tới khi gặp thư mục config hoặc logs.
func resolveRootDir() string {
	if env := os.Getenv("LOG_ROOT_DIR"); env != "" {
		if resolved, err := filepath.EvalSymlinks(env); err == nil {
			return resolved
		}
		return env
	}

	if executable, err := os.Executable(); err == nil {
		// Resolve symlink, quan trọng khi chạy qua systemd
		if resolved, err := filepath.EvalSymlinks(executable); err == nil {
			executable = resolved
		}
		candidate := filepath.Dir(filepath.Dir(filepath.Dir(executable)))
		if hasProjectMarker(candidate) {
			return candidate
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	dir := wd
	for i := 0; i < 5; i++ {
		if hasProjectMarker(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return wd
}

// hasProjectMarker kiểm tra dir có phải gốc project (chứa config/ hoặc logs/)
func hasProjectMarker(dir string) bool {
	for _, marker := range []string{"config", "logs"} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func logDir() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	return filepath.Join(rootDir, config.LogPath)
}

// logFilePath trả về đường dẫn file log của logger name
func logFilePath(name string) string {
	filename := name + ".log"
	switch name {
	case "app":
		filename = config.AppFile
	case "audit":
		filename = config.AuditFile
	}
	return filepath.Join(logDir(), filename)
}

// GetLogger trả về logger theo tên, tạo mới nếu chưa có.
// Gọi trước Init sẽ tự init với cấu hình mặc định.
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Failed to initialize logger: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}

	logger := newLogger(name)
	loggers[name] = logger
	return logger
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetAuditLogger trả về logger cho audit
func GetAuditLogger() *logrus.Logger {
	return GetLogger("audit")
}

// newLogger dựng một logger với formatter, filter hook và async writer.
// Mọi writer đi qua AsyncHook nên output trực tiếp của logrus bị discard.
func newLogger(name string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetReportCaller(true)
	logger.SetFormatter(newFormatter())

	var writers []io.Writer
	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFilePath(name),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	// FilterHook phải đứng trước AsyncHook: entry bị filter được đánh dấu
	// trước khi vào hàng đợi ghi
	logger.AddHook(NewFilterHook(config))
	if len(writers) > 0 {
		logger.AddHook(NewAsyncHookWithWriters(writers, 1000))
		logger.SetOutput(io.Discard)
	}

	logger = logger.WithField("service", name).Logger

	logger.WithFields(logrus.Fields{
		"log_file": logFilePath(name),
		"level":    logger.GetLevel().String(),
		"format":   config.Format,
		"output":   config.Output,
	}).Info("Logger initialized successfully")

	return logger
}

func newFormatter() logrus.Formatter {
	if config.Format == "json" {
		return &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			parts := strings.Split(f.Function, ".")
			return parts[len(parts)-1], fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		},
	}
}
