package utility

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("token-abc", "user-1")

	value, found := cache.Get("token-abc")
	if !found {
		t.Fatal("entry vừa Set phải tìm thấy được")
	}
	if value != "user-1" {
		t.Errorf("giá trị phải là user-1, nhận %v", value)
	}

	if _, found := cache.Get("token-khac"); found {
		t.Error("key chưa Set không được tìm thấy")
	}
}

func TestCache_EntryHetHan(t *testing.T) {
	cache := NewCache(10*time.Millisecond, time.Minute)
	defer cache.Stop()

	cache.Set("token-abc", "user-1")
	time.Sleep(20 * time.Millisecond)

	if _, found := cache.Get("token-abc"); found {
		t.Error("entry quá TTL không được trả về")
	}
}

func TestCache_StopNhieuLan(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)

	// Stop lặp lại không được panic
	cache.Stop()
	cache.Stop()
}
