package client

import (
	"context"
	"errors"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// OpenAIClient는 OpenAI 호환 chat completions API로 텍스트를 생성합니다.
type OpenAIClient struct {
	BaseURL string
}

var _ _interface.LLMClient = (*OpenAIClient)(nil)

func NewOpenAIClient(baseURL string) *OpenAIClient {
	return &OpenAIClient{BaseURL: baseURL}
}

func (o *OpenAIClient) Complete(ctx context.Context, apiKey, modelName, prompt string) (string, error) {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if o.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(o.BaseURL))
	}
	client := openai.NewClient(opts...)

	start := time.Now()
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		utils.RecordApiCall("openai", 500, time.Since(start).Seconds())
		return "", err
	}
	utils.RecordApiCall("openai", 200, time.Since(start).Seconds())

	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
