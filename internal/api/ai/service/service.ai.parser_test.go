// Package aisvc - Test ParseGenerated: bóc code fence, decode JSON array, kiểm tra số lượng.
package aisvc

import (
	"errors"
	"testing"

	"interview_admin/internal/common"
)

func TestParseGenerated_BareArray(t *testing.T) {
	raw := `[{"content":"Câu hỏi 1","followUp":true},{"content":"Câu hỏi 2","followUp":false}]`
	questions, err := ParseGenerated(raw, 2)
	if err != nil {
		t.Fatalf("ParseGenerated trả về lỗi: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("Mong đợi 2 câu hỏi, nhận %d", len(questions))
	}
	if questions[0].Content != "Câu hỏi 1" || !questions[0].FollowUp {
		t.Errorf("Item 0 không đúng: %+v", questions[0])
	}
	if questions[1].Content != "Câu hỏi 2" || questions[1].FollowUp {
		t.Errorf("Item 1 không đúng: %+v", questions[1])
	}
}

func TestParseGenerated_FencedArray(t *testing.T) {
	raw := "```json\n[{\"content\":\"Q1\",\"followUp\":false}]\n```"
	questions, err := ParseGenerated(raw, 1)
	if err != nil {
		t.Fatalf("ParseGenerated trả về lỗi với code fence: %v", err)
	}
	if len(questions) != 1 || questions[0].Content != "Q1" {
		t.Errorf("Kết quả không đúng: %+v", questions)
	}
}

func TestParseGenerated_FenceWithoutTag(t *testing.T) {
	raw := "```\n[{\"content\":\"Q1\",\"followUp\":true}]\n```"
	questions, err := ParseGenerated(raw, 1)
	if err != nil {
		t.Fatalf("ParseGenerated trả về lỗi với fence không tag: %v", err)
	}
	if len(questions) != 1 {
		t.Errorf("Mong đợi 1 câu hỏi, nhận %d", len(questions))
	}
}

func TestParseGenerated_CountMismatch(t *testing.T) {
	raw := `[{"content":"Q1","followUp":false}]`
	_, err := ParseGenerated(raw, 2)
	if err == nil {
		t.Fatal("Mong đợi lỗi khi số lượng không khớp")
	}
	assertParseError(t, err)
}

func TestParseGenerated_NotJSON(t *testing.T) {
	_, err := ParseGenerated("xin lỗi, tôi không thể tạo câu hỏi", 3)
	if err == nil {
		t.Fatal("Mong đợi lỗi decode với text không phải JSON")
	}
	assertParseError(t, err)
}

func TestParseGenerated_NotArray(t *testing.T) {
	_, err := ParseGenerated(`{"content":"Q1","followUp":false}`, 1)
	if err == nil {
		t.Fatal("Mong đợi lỗi khi phản hồi không phải array")
	}
	assertParseError(t, err)
}

func TestParseGenerated_Empty(t *testing.T) {
	_, err := ParseGenerated("```json\n```", 1)
	if err == nil {
		t.Fatal("Mong đợi lỗi với phản hồi rỗng")
	}
	assertParseError(t, err)
}

func TestParseGenerated_OrderPreserved(t *testing.T) {
	raw := `[{"content":"A"},{"content":"B"},{"content":"C"}]`
	questions, err := ParseGenerated(raw, 3)
	if err != nil {
		t.Fatalf("ParseGenerated trả về lỗi: %v", err)
	}
	want := []string{"A", "B", "C"}
	for i, q := range questions {
		if q.Content != want[i] {
			t.Errorf("Thứ tự sai ở index %d: mong %q, nhận %q", i, want[i], q.Content)
		}
	}
}

func assertParseError(t *testing.T, err error) {
	t.Helper()
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("Lỗi không phải *common.Error: %v", err)
	}
	if customErr.Code.Code != common.ErrCodeAIParse.Code {
		t.Errorf("Mong mã lỗi %s, nhận %s", common.ErrCodeAIParse.Code, customErr.Code.Code)
	}
}
