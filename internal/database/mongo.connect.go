// Package database quản lý kết nối MongoDB cho toàn ứng dụng.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interview_admin/config"
	"interview_admin/internal/logger"
)

// Thông số pool và timeout cho client MongoDB
const (
	maxPoolSize    = 50
	minPoolSize    = 10
	connectTimeout = 5 * time.Second
	socketTimeout  = 10 * time.Second
)

// GetInstance kết nối MongoDB theo connection URI trong cấu hình và trả về
// client đã ping thành công.
//
// Parameters:
//   - c: Cấu hình ứng dụng chứa MongoDB_ConnectionURI
//
// Returns:
//   - *mongo.Client: Client đã kết nối
//   - error: Lỗi khi URI rỗng, kết nối thất bại hoặc ping thất bại
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	clientOptions := options.Client().
		ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetConnectTimeout(connectTimeout).
		SetSocketTimeout(socketTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping với timeout ngắn riêng để phát hiện sớm URI trỏ sai server
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance ngắt kết nối client MongoDB
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
