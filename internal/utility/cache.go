package utility

import (
	"sync"
	"time"
)

// cacheEntry là một mục trong cache kèm thời điểm hết hạn
type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache là cache in-memory có TTL theo từng entry, an toàn cho goroutine.
// Dùng để cache kết quả tra cứu user theo token trong middleware auth.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]cacheEntry
	ttl      time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewCache tạo một Cache mới. ttl là thời gian sống của mỗi entry,
// cleanup là chu kỳ quét xoá các entry đã hết hạn.
func NewCache(ttl, cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]cacheEntry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop(cleanup)
	return cache
}

// Set lưu giá trị vào cache với thời gian sống mặc định
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get lấy giá trị từ cache, trả về false nếu không có hoặc đã hết hạn
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.items[key]
	c.mu.RUnlock()
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Stop dừng goroutine dọn dẹp. Gọi nhiều lần vẫn an toàn.
// Cache singleton sống theo process không cần gọi, nhưng cache tạo trong
// test hoặc theo scope ngắn phải Stop để không leak goroutine.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

// cleanupLoop quét định kỳ và xoá các entry đã hết hạn
func (c *Cache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, entry := range c.items {
				if now.After(entry.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
