package aisvc

import (
	"context"
	"fmt"

	"interview_admin/internal/common"
	"interview_admin/internal/global"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// GenerationService sinh câu hỏi phỏng vấn hàng loạt qua OpenAI chat completion.
// Một lần gọi sinh đúng count câu hỏi; không có retry — caller nhận lỗi và tự gọi lại.
type GenerationService struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewGenerationService tạo mới GenerationService từ cấu hình server.
// Hỗ trợ base URL thay thế cho các dịch vụ tương thích OpenAI (proxy, self-host).
// Thiếu API key không chặn khởi động — lỗi trả về khi gọi Generate.
func NewGenerationService() *GenerationService {
	cfg := global.MongoDB_ServerConfig

	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	return &GenerationService{
		client: openai.NewClientWithConfig(clientConfig),
		apiKey: cfg.OpenAIAPIKey,
		model:  cfg.OpenAIModel,
	}
}

// Generate gọi LLM sinh đúng count câu hỏi cho cặp (level, type) và parse kết quả.
// Trả về danh sách candidate chưa lưu; lỗi provider hoặc parse được trả thẳng về caller.
func (s *GenerationService) Generate(ctx context.Context, level string, questionType string, count int) ([]GeneratedQuestion, error) {
	if s.apiKey == "" {
		return nil, common.NewError(common.ErrCodeAIProvider, "Thiếu cấu hình OPENAI_API_KEY", common.StatusInternalServerError, nil)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(count),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt(level, questionType, count),
			},
		},
	})
	if err != nil {
		return nil, common.NewError(common.ErrCodeAIProvider, "Lỗi khi gọi dịch vụ sinh câu hỏi", common.StatusBadGateway, err.Error())
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, common.NewError(common.ErrCodeAIProvider, "Dịch vụ AI không trả về nội dung", common.StatusBadGateway, nil)
	}

	questions, err := ParseGenerated(resp.Choices[0].Message.Content, count)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"level": level,
		"type":  questionType,
		"count": count,
		"model": s.model,
	}).Info("Generate: Đã sinh câu hỏi từ LLM")
	return questions, nil
}

func systemPrompt(count int) string {
	return fmt.Sprintf("You are an expert interviewer creating technical interview questions. "+
		"Generate exactly %d unique interview questions based on the given parameters. "+
		"Return ONLY a valid JSON array with no markdown formatting or code blocks.", count)
}

func userPrompt(level string, questionType string, count int) string {
	return fmt.Sprintf(`Generate %d interview questions with the following parameters:
- Level: %s
- Type: %s

Return a JSON array of objects with this exact structure:
[
  {
    "content": "question text here",
    "followUp": true or false
  }
]

Make sure each question is unique, relevant to the level and type specified, and appropriate for a technical interview. The followUp field should be true if the question is designed to have follow-up questions.`, count, level, questionType)
}
