package questionsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"interview_admin/internal/common"
	"interview_admin/internal/global"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// elevenLabsBaseURL là endpoint text-to-speech của ElevenLabs
const elevenLabsBaseURL = "https://api.elevenlabs.io/v1/text-to-speech"

// VoiceService sinh giọng đọc cho câu hỏi: text-to-speech qua ElevenLabs,
// upload file mp3 lên Cloudinary và (nếu sinh cho câu hỏi đã lưu) gán audioUrl.
type VoiceService struct {
	questions  *QuestionService
	httpClient *http.Client
}

// NewVoiceService tạo mới VoiceService
func NewVoiceService() (*VoiceService, error) {
	questionService, err := NewQuestionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create question service: %v", err)
	}

	return &VoiceService{
		questions: questionService,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// VoiceResult là kết quả sinh giọng đọc
type VoiceResult struct {
	Success  bool   `json:"success"`
	AudioURL string `json:"audioUrl"`
}

// GenerateForText sinh giọng đọc cho một đoạn text tự do và trả về URL audio
func (s *VoiceService) GenerateForText(ctx context.Context, text string) (*VoiceResult, error) {
	audio, err := s.synthesize(ctx, text)
	if err != nil {
		return nil, err
	}

	audioURL, err := s.uploadAudio(ctx, audio)
	if err != nil {
		return nil, err
	}

	return &VoiceResult{Success: true, AudioURL: audioURL}, nil
}

// GenerateForQuestion sinh giọng đọc cho nội dung của một câu hỏi đã lưu
// và gán audioUrl vào câu hỏi đó.
func (s *VoiceService) GenerateForQuestion(ctx context.Context, questionID primitive.ObjectID) (*VoiceResult, error) {
	question, err := s.questions.FindOneById(ctx, questionID)
	if err != nil {
		return nil, err
	}

	result, err := s.GenerateForText(ctx, question.Content)
	if err != nil {
		return nil, err
	}

	if _, err := s.questions.SetAudioURL(ctx, questionID, result.AudioURL); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"question_id": questionID.Hex(),
		"audio_url":   result.AudioURL,
	}).Info("GenerateForQuestion: Đã gán audio cho câu hỏi")
	return result, nil
}

// elevenLabsRequest là body gửi tới ElevenLabs
type elevenLabsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// synthesize gọi ElevenLabs text-to-speech và trả về dữ liệu mp3
func (s *VoiceService) synthesize(ctx context.Context, text string) ([]byte, error) {
	cfg := global.MongoDB_ServerConfig
	if cfg.ElevenLabsAPIKey == "" {
		return nil, common.NewError(common.ErrCodeAIProvider, "Thiếu cấu hình ELEVENLABS_API_KEY", common.StatusInternalServerError, nil)
	}

	body, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: cfg.ElevenLabsModelID,
	})
	if err != nil {
		return nil, common.NewError(common.ErrCodeAIProvider, "Không tạo được request text-to-speech", common.StatusInternalServerError, err)
	}

	url := fmt.Sprintf("%s/%s?output_format=mp3_44100_128", elevenLabsBaseURL, cfg.ElevenLabsVoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAIProvider, "Không tạo được request text-to-speech", common.StatusInternalServerError, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", cfg.ElevenLabsAPIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAIProvider, "Lỗi khi gọi dịch vụ text-to-speech", common.StatusBadGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, common.NewError(common.ErrCodeAIProvider,
			fmt.Sprintf("Dịch vụ text-to-speech trả về lỗi %d", resp.StatusCode), common.StatusBadGateway, string(detail))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAIProvider, "Không đọc được dữ liệu audio", common.StatusBadGateway, err)
	}
	if len(audio) == 0 {
		return nil, common.NewError(common.ErrCodeAIProvider, "Dịch vụ text-to-speech trả về dữ liệu rỗng", common.StatusBadGateway, nil)
	}
	return audio, nil
}

// uploadAudio đẩy dữ liệu mp3 lên Cloudinary và trả về secure URL.
// File mp3 upload theo resource type "video" (quy ước của Cloudinary cho audio).
func (s *VoiceService) uploadAudio(ctx context.Context, audio []byte) (string, error) {
	cfg := global.MongoDB_ServerConfig
	if cfg.CloudinaryURL == "" {
		return "", common.NewError(common.ErrCodeAIProvider, "Thiếu cấu hình CLOUDINARY_URL", common.StatusInternalServerError, nil)
	}

	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return "", common.NewError(common.ErrCodeAIProvider, "Cấu hình Cloudinary không hợp lệ", common.StatusInternalServerError, err)
	}

	resp, err := cld.Upload.Upload(ctx, bytes.NewReader(audio), uploader.UploadParams{
		ResourceType: "video",
		Folder:       cfg.CloudinaryFolder,
		Format:       "mp3",
	})
	if err != nil {
		return "", common.NewError(common.ErrCodeAIProvider, "Lỗi khi upload audio lên Cloudinary", common.StatusBadGateway, err)
	}
	if resp.SecureURL == "" {
		return "", common.NewError(common.ErrCodeAIProvider, "Cloudinary không trả về URL audio", common.StatusBadGateway, resp.Error.Message)
	}
	return resp.SecureURL, nil
}
