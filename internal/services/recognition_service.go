package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/rs/zerolog"

	"kaidan-backend/internal/metrics"
	"kaidan-backend/internal/models"
)

// ErrNoAPIKey is returned when recognition is requested without any
// configured credentials.
var ErrNoAPIKey = errors.New("未配置识别接口密钥")

const defaultRecognitionPrompt = `识别这张销售单照片，返回JSON：
{"customer":"客户名","destination":"到站","plate":"车牌","driver":"司机","date":"日期",
"items":[{"product":"产品名","spec_jin":"单件斤数","count":"件数","price_per_ton":"吨价"}]}
识别不到的字段留空字符串。只返回JSON，不要其他文字。`

// RecognitionService calls an OpenAI-compatible vision model to read a
// slip photo into a structured guess. Everything it returns is untrusted
// raw text; the caller pushes it through the same auto-fill path as
// manual typing.
type RecognitionService struct {
	settings  *SettingService
	envAPIKey string
	log       zerolog.Logger
}

func NewRecognitionService(settings *SettingService, envAPIKey string, log zerolog.Logger) *RecognitionService {
	return &RecognitionService{
		settings:  settings,
		envAPIKey: envAPIKey,
		log:       log,
	}
}

// Recognize sends the image to the configured vision model and parses
// the first JSON object out of its reply.
func (s *RecognitionService) Recognize(ctx context.Context, image []byte, mimeType string) (*models.RecognitionResult, error) {
	aiCfg := s.settings.AIConfig(ctx, s.envAPIKey)
	if aiCfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	clientCfg := openai.DefaultConfig(aiCfg.APIKey)
	if aiCfg.BaseURL != "" {
		clientCfg.BaseURL = aiCfg.BaseURL
	}
	client := openai.NewClientWithConfig(clientCfg)

	prompt := aiCfg.Prompt
	if strings.TrimSpace(prompt) == "" {
		prompt = defaultRecognitionPrompt
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     aiCfg.Model,
		MaxTokens: 1000,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
	})
	if err != nil {
		metrics.RecognitionRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("vision request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		metrics.RecognitionRequestsTotal.WithLabelValues("empty").Inc()
		return nil, errors.New("vision model returned no choices")
	}

	content := resp.Choices[0].Message.Content
	result, err := parseRecognition(content)
	if err != nil {
		metrics.RecognitionRequestsTotal.WithLabelValues("unparsable").Inc()
		s.log.Warn().Str("content", content).Msg("unparsable recognition reply")
		return nil, err
	}

	metrics.RecognitionRequestsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Int("items", len(result.Items)).Msg("slip photo recognized")
	return result, nil
}

// parseRecognition extracts the first {...} blob from the model reply.
// Models habitually wrap JSON in prose or code fences.
func parseRecognition(content string) (*models.RecognitionResult, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object in vision reply")
	}

	var result models.RecognitionResult
	if err := json.Unmarshal([]byte(content[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("parse vision reply: %w", err)
	}
	return &result, nil
}
