// Package questionsvc - Test ReadinessService: ngưỡng, idempotent, monotonic.
package questionsvc

import (
	"context"
	"errors"
	"testing"

	categorymodels "interview_admin/internal/api/category/models"
	"interview_admin/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCounter trả về số đếm cố định
type fakeCounter struct {
	count int64
	err   error
	calls int
}

func (f *fakeCounter) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	f.calls++
	return f.count, f.err
}

// fakeFlagStore giữ một danh mục trong bộ nhớ và ghi lại các lần bật cờ
type fakeFlagStore struct {
	category categorymodels.Category
	findErr  error
	marked   []string
}

func (f *fakeFlagStore) FindOneById(ctx context.Context, id primitive.ObjectID) (categorymodels.Category, error) {
	if f.findErr != nil {
		return categorymodels.Category{}, f.findErr
	}
	return f.category, nil
}

func (f *fakeFlagStore) MarkLevelReady(ctx context.Context, categoryID primitive.ObjectID, level string) (*categorymodels.Category, error) {
	f.marked = append(f.marked, level)
	switch level {
	case categorymodels.LevelJunior:
		f.category.Level.Junior = true
	case categorymodels.LevelMid:
		f.category.Level.Middle = true
	case categorymodels.LevelSenior:
		f.category.Level.Senior = true
	}
	return &f.category, nil
}

func newTestReadinessService(counter *fakeCounter, store *fakeFlagStore, threshold int64) *ReadinessService {
	return &ReadinessService{questions: counter, categories: store, threshold: threshold}
}

func TestRecompute_BelowThreshold(t *testing.T) {
	store := &fakeFlagStore{}
	service := newTestReadinessService(&fakeCounter{count: 14}, store, ReadyThreshold)

	err := service.Recompute(context.Background(), primitive.NewObjectID(), "junior")
	if err != nil {
		t.Fatalf("Dưới ngưỡng không phải là lỗi: %v", err)
	}
	if len(store.marked) != 0 {
		t.Errorf("Dưới ngưỡng không được bật cờ, đã bật: %v", store.marked)
	}
}

func TestRecompute_AtThreshold(t *testing.T) {
	store := &fakeFlagStore{}
	service := newTestReadinessService(&fakeCounter{count: 15}, store, ReadyThreshold)

	err := service.Recompute(context.Background(), primitive.NewObjectID(), "junior")
	if err != nil {
		t.Fatalf("Recompute trả về lỗi: %v", err)
	}
	if len(store.marked) != 1 || store.marked[0] != categorymodels.LevelJunior {
		t.Errorf("Đạt ngưỡng phải bật cờ junior, nhận: %v", store.marked)
	}
	if !store.category.Level.Junior {
		t.Error("Cờ junior phải được bật trên danh mục")
	}
}

func TestRecompute_MidAliasMiddle(t *testing.T) {
	store := &fakeFlagStore{}
	service := newTestReadinessService(&fakeCounter{count: 20}, store, ReadyThreshold)

	// "middle" ở đầu vào chuẩn hóa về "mid", cờ ghi vào field Middle
	if err := service.Recompute(context.Background(), primitive.NewObjectID(), "middle"); err != nil {
		t.Fatalf("Recompute trả về lỗi: %v", err)
	}
	if len(store.marked) != 1 || store.marked[0] != categorymodels.LevelMid {
		t.Errorf("Mong bật cờ level %q, nhận: %v", categorymodels.LevelMid, store.marked)
	}
	if !store.category.Level.Middle {
		t.Error("Cờ Middle phải được bật trên danh mục")
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	categoryID := primitive.NewObjectID()
	store := &fakeFlagStore{}
	service := newTestReadinessService(&fakeCounter{count: 15}, store, ReadyThreshold)

	if err := service.Recompute(context.Background(), categoryID, "senior"); err != nil {
		t.Fatalf("Lần recompute đầu trả về lỗi: %v", err)
	}
	if err := service.Recompute(context.Background(), categoryID, "senior"); err != nil {
		t.Fatalf("Lần recompute thứ hai trả về lỗi: %v", err)
	}
	// Cờ đã bật, lần hai không ghi thêm
	if len(store.marked) != 1 {
		t.Errorf("Cờ đã bật không được ghi lại, số lần ghi: %d", len(store.marked))
	}
}

func TestRecompute_Monotonic(t *testing.T) {
	// Danh mục đã đạt ngưỡng trước đó, số câu hỏi hiện tại đã tụt xuống dưới ngưỡng
	store := &fakeFlagStore{
		category: categorymodels.Category{
			Level: categorymodels.CategoryLevelFlags{Junior: true},
		},
	}
	service := newTestReadinessService(&fakeCounter{count: 3}, store, ReadyThreshold)

	if err := service.Recompute(context.Background(), primitive.NewObjectID(), "junior"); err != nil {
		t.Fatalf("Recompute trả về lỗi: %v", err)
	}
	if !store.category.Level.Junior {
		t.Error("Cờ readiness không bao giờ được hạ xuống")
	}
	if len(store.marked) != 0 {
		t.Errorf("Dưới ngưỡng không được ghi cờ, đã ghi: %v", store.marked)
	}
}

func TestRecompute_CategoryNotFound(t *testing.T) {
	store := &fakeFlagStore{findErr: common.ErrNotFound}
	service := newTestReadinessService(&fakeCounter{count: 100}, store, ReadyThreshold)

	// Danh mục bị xóa giữa chừng là trường hợp bình thường, không phải lỗi
	if err := service.Recompute(context.Background(), primitive.NewObjectID(), "junior"); err != nil {
		t.Fatalf("Danh mục không tồn tại không được trả lỗi: %v", err)
	}
	if len(store.marked) != 0 {
		t.Errorf("Danh mục không tồn tại không được ghi cờ, đã ghi: %v", store.marked)
	}
}

func TestRecompute_InvalidLevel(t *testing.T) {
	service := newTestReadinessService(&fakeCounter{count: 100}, &fakeFlagStore{}, ReadyThreshold)

	err := service.Recompute(context.Background(), primitive.NewObjectID(), "expert")
	if err == nil {
		t.Fatal("Level không hợp lệ phải trả lỗi")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.Code.Code != common.ErrCodeBusinessRecompute.Code {
		t.Errorf("Mong mã lỗi %s, nhận: %v", common.ErrCodeBusinessRecompute.Code, err)
	}
}

func TestRecompute_CountError(t *testing.T) {
	counter := &fakeCounter{err: errors.New("mongo down")}
	service := newTestReadinessService(counter, &fakeFlagStore{}, ReadyThreshold)

	err := service.Recompute(context.Background(), primitive.NewObjectID(), "junior")
	if err == nil {
		t.Fatal("Lỗi đếm phải được trả về cho caller log")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.Code.Code != common.ErrCodeBusinessRecompute.Code {
		t.Errorf("Mong mã lỗi %s, nhận: %v", common.ErrCodeBusinessRecompute.Code, err)
	}
}

func TestRecompute_CustomThreshold(t *testing.T) {
	store := &fakeFlagStore{}
	service := newTestReadinessService(&fakeCounter{count: 2}, store, 2)

	if err := service.Recompute(context.Background(), primitive.NewObjectID(), "junior"); err != nil {
		t.Fatalf("Recompute trả về lỗi: %v", err)
	}
	if len(store.marked) != 1 {
		t.Errorf("Đạt ngưỡng tùy chỉnh phải bật cờ, nhận: %v", store.marked)
	}
}
