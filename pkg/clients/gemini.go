package client

import (
	"context"
	"errors"
	"time"

	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	"github.com/sh5080/ndns-comment/pkg/utils"
	"google.golang.org/genai"
)

// GeminiClient는 Gemini API로 텍스트를 생성합니다.
// API 키가 요청마다 달라질 수 있으므로 호출할 때마다 SDK 클라이언트를 만듭니다.
type GeminiClient struct {
	// BaseURL이 비어 있으면 SDK 기본 엔드포인트를 사용합니다
	BaseURL string
}

var _ _interface.LLMClient = (*GeminiClient)(nil)

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{}
}

// Complete는 prompt를 modelName 모델에 보내고 응답 텍스트를 반환합니다.
func (g *GeminiClient) Complete(ctx context.Context, apiKey, modelName, prompt string) (string, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
	if err != nil {
		utils.RecordApiCall("gemini", 500, time.Since(start).Seconds())
		return "", err
	}
	utils.RecordApiCall("gemini", 200, time.Since(start).Seconds())

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: 응답에 텍스트가 없습니다")
	}
	return text, nil
}
