package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// filterSet là một danh sách cho phép, so sánh không phân biệt hoa thường.
// Set rỗng hoặc chứa "*" nghĩa là cho phép tất cả.
type filterSet struct {
	values   map[string]bool
	allowAll bool
}

// newFilterSet parse chuỗi "value1,value2" hoặc "*" thành filterSet
func newFilterSet(raw string) filterSet {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "*" {
		return filterSet{allowAll: true}
	}

	values := make(map[string]bool)
	for _, v := range strings.Split(raw, ",") {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			values[v] = true
		}
	}
	if len(values) == 0 || values["*"] {
		return filterSet{allowAll: true}
	}
	return filterSet{values: values}
}

func (s filterSet) allows(value string) bool {
	if s.allowAll {
		return true
	}
	return s.values[strings.ToLower(value)]
}

// allowsPrefix như allows nhưng chấp nhận cả prefix match, dùng cho endpoint
// (cấu hình /api/v1/question khớp mọi route con của nó)
func (s filterSet) allowsPrefix(value string) bool {
	if s.allowAll {
		return true
	}
	value = strings.ToLower(value)
	for allowed := range s.values {
		if value == allowed || strings.HasPrefix(value, allowed) {
			return true
		}
	}
	return false
}

// FilterHook lọc log entry theo các field có cấu trúc mà middleware và
// service gắn vào: module (auth, question, billing), collection, endpoint,
// method và log level. Entry bị loại được đánh dấu _filtered=true để
// AsyncHook bỏ qua khi ghi.
type FilterHook struct {
	mu          sync.RWMutex
	modules     filterSet
	collections filterSet
	endpoints   filterSet
	methods     filterSet
	logTypes    filterSet
}

// NewFilterHook tạo filter hook từ các biến LOG_FILTER_* trong config
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{}
	hook.UpdateFilters(cfg)
	return hook
}

// UpdateFilters nạp lại cấu hình filter, gọi được lúc runtime
func (h *FilterHook) UpdateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.modules = newFilterSet(cfg.FilterModules)
	h.collections = newFilterSet(cfg.FilterCollections)
	h.endpoints = newFilterSet(cfg.FilterEndpoints)
	h.methods = newFilterSet(cfg.FilterMethods)
	h.logTypes = newFilterSet(cfg.FilterLogTypes)
}

// Levels trả về các level mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry không khớp filter bằng field _filtered.
// Entry thiếu một field (ví dụ log không gắn module) thì không bị
// filter theo tiêu chí đó.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.logTypes.allows(entry.Level.String()) {
		entry.Data["_filtered"] = true
		return nil
	}

	if module, ok := entry.Data["module"].(string); ok && module != "" {
		if !h.modules.allows(module) {
			entry.Data["_filtered"] = true
			return nil
		}
	}

	if collection, ok := entry.Data["collection"].(string); ok && collection != "" {
		if !h.collections.allows(collection) {
			entry.Data["_filtered"] = true
			return nil
		}
	}

	endpoint, ok := entry.Data["endpoint"].(string)
	if !ok || endpoint == "" {
		endpoint, _ = entry.Data["path"].(string)
	}
	if endpoint != "" && !h.endpoints.allowsPrefix(endpoint) {
		entry.Data["_filtered"] = true
		return nil
	}

	if method, ok := entry.Data["method"].(string); ok && method != "" {
		if !h.methods.allows(method) {
			entry.Data["_filtered"] = true
			return nil
		}
	}

	return nil
}
