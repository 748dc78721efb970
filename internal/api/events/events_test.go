package events

import (
	"context"
	"testing"
	"time"
)

func TestEmitDataChanged_HandlerPanicKhongAnhHuongHandlerKhac(t *testing.T) {
	received := make(chan string, 1)

	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		panic("handler hỏng")
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		received <- e.CollectionName
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "questions",
		Operation:      OpInsert,
	})

	select {
	case name := <-received:
		if name != "questions" {
			t.Errorf("collection phải là questions, nhận %q", name)
		}
	case <-time.After(time.Second):
		t.Fatal("handler bình thường phải vẫn được gọi khi handler khác panic")
	}
}

func TestLogPanic_KhongPanicTiep(t *testing.T) {
	// Đường recover không được phép panic tiếp dù logger gặp sự cố
	logPanic(DataChangeEvent{CollectionName: "questions", Operation: OpUpdate}, "lý do bất kỳ")
}
