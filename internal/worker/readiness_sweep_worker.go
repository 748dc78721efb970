package worker

import (
	"context"
	"sync"
	"time"

	"interview_admin/internal/api/events"
	questionmodels "interview_admin/internal/api/question/models"
	questionsvc "interview_admin/internal/api/question/service"
	"interview_admin/internal/global"
	"interview_admin/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReadinessSweepWorker quét định kỳ các cặp (danh mục, level) bị chạm bởi insert câu hỏi
// và tính lại cờ readiness. Bổ sung cho recompute đồng bộ trong batch insert:
// bắt các trường hợp recompute lỗi tạm thời hoặc câu hỏi được tạo qua CRUD đơn lẻ.
// Recompute là advisory — lỗi chỉ log, cặp lỗi được giữ lại để thử ở lần quét sau.
type ReadinessSweepWorker struct {
	readinessService *questionsvc.ReadinessService
	interval         time.Duration

	mu    sync.Mutex
	dirty map[dirtyPair]bool
}

type dirtyPair struct {
	categoryID primitive.ObjectID
	level      string
}

// NewReadinessSweepWorker tạo mới ReadinessSweepWorker và đăng ký lắng nghe
// sự kiện thay đổi dữ liệu trên collection questions.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần quét (mặc định: 5 phút)
func NewReadinessSweepWorker(interval time.Duration) (*ReadinessSweepWorker, error) {
	readinessService, err := questionsvc.NewReadinessService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 5 * time.Minute
	}

	w := &ReadinessSweepWorker{
		readinessService: readinessService,
		interval:         interval,
		dirty:            map[dirtyPair]bool{},
	}
	events.OnDataChanged(w.onDataChanged)
	return w, nil
}

// onDataChanged đánh dấu cặp (danh mục, level) cần quét khi có câu hỏi được insert.
// Xóa câu hỏi không đánh dấu — readiness không bao giờ bị hạ xuống.
func (w *ReadinessSweepWorker) onDataChanged(ctx context.Context, e events.DataChangeEvent) {
	if e.CollectionName != global.MongoDB_ColNames.Questions {
		return
	}
	if e.Operation != events.OpInsert && e.Operation != events.OpUpdate {
		return
	}

	switch doc := e.Document.(type) {
	case questionmodels.Question:
		w.markDirty(doc)
	case *questionmodels.Question:
		w.markDirty(*doc)
	case []questionmodels.Question:
		for _, q := range doc {
			w.markDirty(q)
		}
	}
}

func (w *ReadinessSweepWorker) markDirty(q questionmodels.Question) {
	if q.CategoryID.IsZero() || q.Level == "" {
		return
	}
	w.mu.Lock()
	w.dirty[dirtyPair{categoryID: q.CategoryID, level: q.Level}] = true
	w.mu.Unlock()
}

// drainDirty lấy toàn bộ cặp đang chờ và reset tập dirty
func (w *ReadinessSweepWorker) drainDirty() []dirtyPair {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.dirty) == 0 {
		return nil
	}
	pairs := make([]dirtyPair, 0, len(w.dirty))
	for p := range w.dirty {
		pairs = append(pairs, p)
	}
	w.dirty = map[dirtyPair]bool{}
	return pairs
}

// Start chạy worker trong vòng lặp: mỗi interval quét các cặp dirty và recompute từng cặp
func (w *ReadinessSweepWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🏁 [READINESS] Starting Readiness Sweep Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🏁 [READINESS] Readiness Sweep Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🏁 [READINESS] Panic khi quét readiness, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				pairs := w.drainDirty()
				if len(pairs) == 0 {
					return
				}

				recomputed := 0
				for _, p := range pairs {
					if err := w.readinessService.Recompute(ctx, p.categoryID, p.level); err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"categoryId": p.categoryID.Hex(),
							"level":      p.level,
						}).Warn("🏁 [READINESS] Recompute thất bại, giữ lại để thử lần sau")
						w.mu.Lock()
						w.dirty[p] = true
						w.mu.Unlock()
						continue
					}
					recomputed++
				}

				if recomputed > 0 {
					log.WithFields(map[string]interface{}{
						"recomputed": recomputed,
						"total":      len(pairs),
					}).Info("🏁 [READINESS] Đã quét readiness các cặp danh mục/level")
				}
			}()
		}
	}
}
