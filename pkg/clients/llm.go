package client

import (
	"github.com/sh5080/ndns-comment/pkg/configs"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
)

// NewLLMClient는 설정된 제공자에 맞는 LLM 클라이언트를 반환합니다.
func NewLLMClient(config *configs.EnvConfig) _interface.LLMClient {
	if config.LLM.Provider == configs.ProviderOpenAI {
		return NewOpenAIClient(config.LLM.OpenAIBaseURL)
	}
	return NewGeminiClient()
}
