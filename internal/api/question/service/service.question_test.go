package questionsvc

import (
	"errors"
	"strings"
	"testing"

	basesvc "interview_admin/internal/api/base/service"
	categorymodels "interview_admin/internal/api/category/models"
	models "interview_admin/internal/api/question/models"
	"interview_admin/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeForWrite_MiddleThanhMid(t *testing.T) {
	question := models.Question{
		CategoryID: primitive.NewObjectID(),
		Level:      "middle",
		Type:       models.TypeCore,
		Content:    "Giải thích cơ chế goroutine scheduler",
	}

	if err := normalizeForWrite(&question); err != nil {
		t.Fatalf("normalizeForWrite trả lỗi không mong đợi: %v", err)
	}
	if question.Level != categorymodels.LevelMid {
		t.Errorf("level phải được chuẩn hóa thành %q, nhận %q", categorymodels.LevelMid, question.Level)
	}
}

func TestNormalizeForWrite_LevelKhongHopLe(t *testing.T) {
	question := models.Question{
		CategoryID: primitive.NewObjectID(),
		Level:      "expert",
		Type:       models.TypeCore,
		Content:    "Nội dung hợp lệ",
	}

	err := normalizeForWrite(&question)
	if err == nil {
		t.Fatal("level không hợp lệ phải trả lỗi")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi phải là *common.Error, nhận %T", err)
	}
	if customErr.Code.Code != common.ErrCodeValidationInput.Code {
		t.Errorf("mã lỗi phải là %s, nhận %s", common.ErrCodeValidationInput.Code, customErr.Code.Code)
	}
}

func TestNormalizeForWrite_ContentTrimVaRong(t *testing.T) {
	question := models.Question{
		CategoryID: primitive.NewObjectID(),
		Level:      categorymodels.LevelJunior,
		Type:       models.TypeIntro,
		Content:    "  Bạn hãy giới thiệu bản thân  ",
	}

	if err := normalizeForWrite(&question); err != nil {
		t.Fatalf("normalizeForWrite trả lỗi không mong đợi: %v", err)
	}
	if question.Content != "Bạn hãy giới thiệu bản thân" {
		t.Errorf("content phải được trim, nhận %q", question.Content)
	}

	// Content toàn khoảng trắng coi như rỗng
	blank := models.Question{
		CategoryID: primitive.NewObjectID(),
		Level:      categorymodels.LevelJunior,
		Type:       models.TypeIntro,
		Content:    "   ",
	}
	if err := normalizeForWrite(&blank); err == nil {
		t.Error("content toàn khoảng trắng phải trả lỗi")
	}
}

func TestNormalizeForWrite_ContentQuaDai(t *testing.T) {
	question := models.Question{
		CategoryID: primitive.NewObjectID(),
		Level:      categorymodels.LevelSenior,
		Type:       models.TypeClosing,
		Content:    strings.Repeat("a", models.MaxContentLength+1),
	}

	if err := normalizeForWrite(&question); err == nil {
		t.Errorf("content dài hơn %d ký tự phải trả lỗi", models.MaxContentLength)
	}
}

func TestNormalizeUpdatePayload_LevelAlias(t *testing.T) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"level":   "middle",
			"content": "  Câu hỏi đã chỉnh sửa  ",
		},
	}

	if err := normalizeUpdatePayload(updateData); err != nil {
		t.Fatalf("normalizeUpdatePayload trả lỗi không mong đợi: %v", err)
	}
	if updateData.Set["level"] != categorymodels.LevelMid {
		t.Errorf("level trong $set phải là %q, nhận %v", categorymodels.LevelMid, updateData.Set["level"])
	}
	if updateData.Set["content"] != "Câu hỏi đã chỉnh sửa" {
		t.Errorf("content trong $set phải được trim, nhận %v", updateData.Set["content"])
	}
}

func TestNormalizeUpdatePayload_LevelKhongHopLe(t *testing.T) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"level": "expert"},
	}
	if err := normalizeUpdatePayload(updateData); err == nil {
		t.Error("level không hợp lệ trong $set phải trả lỗi")
	}
}

func TestNormalizeUpdatePayload_BoQuaPayloadKhac(t *testing.T) {
	// Payload không phải UpdateData hoặc không đụng tới level/content thì giữ nguyên
	if err := normalizeUpdatePayload(nil); err != nil {
		t.Errorf("payload nil phải được bỏ qua, nhận lỗi: %v", err)
	}
	if err := normalizeUpdatePayload(map[string]interface{}{"level": "expert"}); err != nil {
		t.Errorf("payload không phải UpdateData phải được bỏ qua, nhận lỗi: %v", err)
	}

	audioOnly := &basesvc.UpdateData{
		Set: map[string]interface{}{"audioUrl": "https://cdn.example.com/q.mp3"},
	}
	if err := normalizeUpdatePayload(audioOnly); err != nil {
		t.Errorf("payload không chứa level/content phải được bỏ qua, nhận lỗi: %v", err)
	}
}
