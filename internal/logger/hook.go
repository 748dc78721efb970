package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ: entry được đẩy vào channel có buffer và
// một goroutine riêng format rồi ghi ra các writer. Request handler không
// bao giờ phải chờ file I/O.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters tạo async hook ghi ra nhiều writer.
// bufferSize <= 0 sẽ dùng mặc định 1000 entry.
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}
	hook.wg.Add(1)
	go hook.drain()
	return hook
}

// Levels trả về các level mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không bao giờ block.
// Channel đầy thì entry bị bỏ; không được log warning ở đây vì sẽ tạo vòng lặp.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng: ghi đồng bộ trực tiếp, bỏ qua lỗi writer
		data, err := h.formatEntry(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
	}
	return nil
}

// drain là goroutine tiêu thụ channel. Có recover vì panic trong goroutine
// logger sẽ làm sập cả server.
func (h *AsyncHook) drain() {
	defer h.wg.Done()

	for entry := range h.entries {
		h.writeEntry(entry)
	}
}

func (h *AsyncHook) writeEntry(entry *logrus.Entry) {
	defer func() {
		if r := recover(); r != nil {
			// Không dùng logger ở đây, ghi thẳng stderr
			fmt.Fprintf(os.Stderr, "[LOGGER PANIC] async writer recovered: %v\n", r)
			debug.PrintStack()
		}
	}()

	// FilterHook đánh dấu entry bị loại bằng field _filtered
	if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
		return
	}
	if _, ok := entry.Data["_filtered"]; ok {
		entry = entry.Dup()
		delete(entry.Data, "_filtered")
	}

	data, err := h.formatEntry(entry)
	if err != nil {
		return
	}

	for _, writer := range h.writers {
		// Writer lỗi thì bỏ qua, vẫn ghi tiếp các writer còn lại
		_, _ = writer.Write(data)
	}
}

// formatEntry format entry bằng formatter của logger, fallback về String()
func (h *AsyncHook) formatEntry(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close đóng channel và đợi goroutine ghi nốt các entry còn lại
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
