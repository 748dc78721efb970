// Package questionsvc - Test BulkInsertService: cô lập lỗi từng item, batch rỗng,
// recompute đúng một lần cho mỗi cặp (danh mục, level) distinct.
package questionsvc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	categorymodels "interview_admin/internal/api/category/models"
	questiondto "interview_admin/internal/api/question/dto"
	models "interview_admin/internal/api/question/models"
	"interview_admin/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCreator insert thành công mọi input trừ input có Content == "fail"
type fakeCreator struct {
	calls int
}

func (f *fakeCreator) Create(ctx context.Context, input *questiondto.QuestionCreateInput) (*models.Question, error) {
	f.calls++
	if input.Content == "fail" {
		return nil, errors.New("nội dung câu hỏi không hợp lệ")
	}
	categoryID, err := primitive.ObjectIDFromHex(input.CategoryID)
	if err != nil {
		return nil, errors.New("categoryId không đúng định dạng ObjectId")
	}
	level, ok := categorymodels.NormalizeLevel(input.Level)
	if !ok {
		return nil, errors.New("level không hợp lệ")
	}
	return &models.Question{
		ID:         primitive.NewObjectID(),
		CategoryID: categoryID,
		Level:      level,
		Type:       input.Type,
		Content:    input.Content,
		FollowUp:   input.FollowUp,
	}, nil
}

// fakeRecomputer ghi lại các cặp được recompute, có thể trả lỗi cố định
type fakeRecomputer struct {
	pairs []string
	err   error
}

func (f *fakeRecomputer) Recompute(ctx context.Context, categoryID primitive.ObjectID, level string) error {
	f.pairs = append(f.pairs, categoryID.Hex()+"/"+level)
	return f.err
}

func newTestBulkService(creator *fakeCreator, recomputer *fakeRecomputer) *BulkInsertService {
	return &BulkInsertService{questions: creator, readiness: recomputer}
}

func makeInput(categoryID primitive.ObjectID, level, content string) questiondto.QuestionCreateInput {
	return questiondto.QuestionCreateInput{
		CategoryID: categoryID.Hex(),
		Level:      level,
		Type:       models.TypeCore,
		Content:    content,
	}
}

func TestInsertBulk_EmptyBatch(t *testing.T) {
	creator := &fakeCreator{}
	recomputer := &fakeRecomputer{}
	service := newTestBulkService(creator, recomputer)

	result, err := service.InsertBulk(context.Background(), nil)
	if !errors.Is(err, common.ErrEmptyBatch) {
		t.Fatalf("Mong đợi ErrEmptyBatch, nhận: %v", err)
	}
	if result != nil {
		t.Errorf("Batch rỗng không được trả kết quả, nhận: %+v", result)
	}
	if creator.calls != 0 {
		t.Errorf("Batch rỗng không được gọi store, đã gọi %d lần", creator.calls)
	}
	if len(recomputer.pairs) != 0 {
		t.Errorf("Batch rỗng không được recompute, đã gọi: %v", recomputer.pairs)
	}
}

func TestInsertBulk_AllSuccess(t *testing.T) {
	categoryID := primitive.NewObjectID()
	inputs := []questiondto.QuestionCreateInput{
		makeInput(categoryID, "junior", "Câu 1"),
		makeInput(categoryID, "junior", "Câu 2"),
		makeInput(categoryID, "junior", "Câu 3"),
	}
	recomputer := &fakeRecomputer{}
	service := newTestBulkService(&fakeCreator{}, recomputer)

	result, err := service.InsertBulk(context.Background(), inputs)
	if err != nil {
		t.Fatalf("InsertBulk trả về lỗi: %v", err)
	}
	if !result.Success {
		t.Error("Batch toàn thành công phải có Success = true")
	}
	if result.Inserted != 3 || result.Total != 3 {
		t.Errorf("Mong inserted=3 total=3, nhận inserted=%d total=%d", result.Inserted, result.Total)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Không được có lỗi, nhận: %+v", result.Errors)
	}
	if len(recomputer.pairs) != 1 {
		t.Errorf("3 item cùng cặp chỉ recompute 1 lần, nhận %d lần: %v", len(recomputer.pairs), recomputer.pairs)
	}
}

func TestInsertBulk_PartialFailure(t *testing.T) {
	categoryID := primitive.NewObjectID()
	inputs := []questiondto.QuestionCreateInput{
		makeInput(categoryID, "junior", "Câu 1"),
		makeInput(categoryID, "junior", "fail"),
		makeInput(categoryID, "junior", "Câu 3"),
	}
	service := newTestBulkService(&fakeCreator{}, &fakeRecomputer{})

	result, err := service.InsertBulk(context.Background(), inputs)
	if err != nil {
		t.Fatalf("Lỗi từng item không được hủy batch: %v", err)
	}
	if result.Success {
		t.Error("Batch có lỗi phải có Success = false")
	}
	if result.Inserted != 2 || result.Total != 3 {
		t.Errorf("Mong inserted=2 total=3, nhận inserted=%d total=%d", result.Inserted, result.Total)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Mong đúng 1 lỗi, nhận %d: %+v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Index != 1 {
		t.Errorf("Lỗi phải giữ index gốc 1, nhận %d", result.Errors[0].Index)
	}
	if result.Errors[0].Question == nil || result.Errors[0].Question.Content != "fail" {
		t.Errorf("Lỗi phải kèm candidate gốc, nhận: %+v", result.Errors[0].Question)
	}
	// Các item thành công giữ đúng thứ tự đầu vào
	if result.Questions[0].Content != "Câu 1" || result.Questions[1].Content != "Câu 3" {
		t.Errorf("Thứ tự item thành công sai: %q, %q", result.Questions[0].Content, result.Questions[1].Content)
	}
}

func TestInsertBulk_DistinctPairRecompute(t *testing.T) {
	categoryA := primitive.NewObjectID()
	categoryB := primitive.NewObjectID()

	// 20 item trải trên 2 danh mục x 2 level, đan xen nhau
	var inputs []questiondto.QuestionCreateInput
	for i := 0; i < 5; i++ {
		inputs = append(inputs,
			makeInput(categoryA, "junior", fmt.Sprintf("A junior %d", i)),
			makeInput(categoryB, "junior", fmt.Sprintf("B junior %d", i)),
			makeInput(categoryA, "senior", fmt.Sprintf("A senior %d", i)),
			makeInput(categoryB, "senior", fmt.Sprintf("B senior %d", i)),
		)
	}
	recomputer := &fakeRecomputer{}
	service := newTestBulkService(&fakeCreator{}, recomputer)

	result, err := service.InsertBulk(context.Background(), inputs)
	if err != nil {
		t.Fatalf("InsertBulk trả về lỗi: %v", err)
	}
	if result.Inserted != 20 {
		t.Errorf("Mong inserted=20, nhận %d", result.Inserted)
	}
	want := []string{
		categoryA.Hex() + "/junior",
		categoryB.Hex() + "/junior",
		categoryA.Hex() + "/senior",
		categoryB.Hex() + "/senior",
	}
	if len(recomputer.pairs) != len(want) {
		t.Fatalf("Mong %d lần recompute, nhận %d: %v", len(want), len(recomputer.pairs), recomputer.pairs)
	}
	// Thứ tự recompute theo lần xuất hiện đầu tiên trong batch
	for i, pair := range want {
		if recomputer.pairs[i] != pair {
			t.Errorf("Cặp recompute thứ %d sai: mong %s, nhận %s", i, pair, recomputer.pairs[i])
		}
	}
}

func TestInsertBulk_LevelAliasSamePair(t *testing.T) {
	categoryID := primitive.NewObjectID()
	inputs := []questiondto.QuestionCreateInput{
		makeInput(categoryID, "mid", "Câu 1"),
		makeInput(categoryID, "middle", "Câu 2"),
	}
	recomputer := &fakeRecomputer{}
	service := newTestBulkService(&fakeCreator{}, recomputer)

	if _, err := service.InsertBulk(context.Background(), inputs); err != nil {
		t.Fatalf("InsertBulk trả về lỗi: %v", err)
	}
	// "mid" và "middle" chuẩn hóa về cùng level nên chỉ là một cặp
	if len(recomputer.pairs) != 1 {
		t.Errorf("Alias level phải gộp thành 1 cặp, nhận %d: %v", len(recomputer.pairs), recomputer.pairs)
	}
}

func TestInsertBulk_RecomputeErrorIgnored(t *testing.T) {
	categoryID := primitive.NewObjectID()
	inputs := []questiondto.QuestionCreateInput{
		makeInput(categoryID, "junior", "Câu 1"),
	}
	recomputer := &fakeRecomputer{err: errors.New("mongo down")}
	service := newTestBulkService(&fakeCreator{}, recomputer)

	result, err := service.InsertBulk(context.Background(), inputs)
	if err != nil {
		t.Fatalf("Lỗi recompute không được truyền ra caller: %v", err)
	}
	if !result.Success || result.Inserted != 1 {
		t.Errorf("Kết quả insert không được bị ảnh hưởng bởi lỗi recompute: %+v", result)
	}
}
