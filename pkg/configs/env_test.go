package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("DEFAULT_MODEL", "")
	t.Setenv("SUPPORTED_MODELS", "")
	t.Setenv("CRAWL_TIMEOUT", "")
	t.Setenv("NAVER_BLOG_DOMAIN", "")
	t.Setenv("NAVER_REFERER", "")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, config.LLM.Provider)
	assert.Equal(t, "gemini-2.0-flash", config.LLM.DefaultModel)
	assert.Equal(t, []string{
		"gemini-2.0-flash",
		"gemini-2.5-flash-preview-09-2025",
		"gemini-3-flash-preview",
	}, config.LLM.SupportedModels)
	assert.Equal(t, "https://blog.naver.com", config.Naver.BlogDomain)
	assert.Equal(t, "https://section.blog.naver.com/", config.Naver.Referer)
	assert.Equal(t, 10*time.Second, config.Naver.CrawlTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SUPPORTED_MODELS", "gpt-4o-mini, gpt-4o")
	t.Setenv("DEFAULT_MODEL", "gpt-4o")
	t.Setenv("NAVER_BLOG_DOMAIN", "http://127.0.0.1:9999/")
	t.Setenv("CRAWL_TIMEOUT", "3s")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, config.LLM.Provider)
	assert.Equal(t, "sk-test", config.APIKey())
	assert.Equal(t, []string{"gpt-4o-mini", "gpt-4o"}, config.LLM.SupportedModels)
	assert.True(t, config.IsSupportedModel("gpt-4o-mini"))
	assert.False(t, config.IsSupportedModel("gemini-2.0-flash"))
	assert.Equal(t, "http://127.0.0.1:9999", config.Naver.BlogDomain)
	assert.Equal(t, 3*time.Second, config.Naver.CrawlTimeout)
}

func TestLoad_ProviderModelDefaults(t *testing.T) {
	t.Setenv("DEFAULT_MODEL", "")
	t.Setenv("SUPPORTED_MODELS", "")
	t.Setenv("CRAWL_TIMEOUT", "")
	t.Setenv("NAVER_BLOG_DOMAIN", "")

	t.Run("openai without model settings", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "openai")

		config, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", config.LLM.DefaultModel)
		assert.Equal(t, []string{"gpt-4o-mini", "gpt-4o"}, config.LLM.SupportedModels)
		assert.False(t, config.IsSupportedModel("gemini-2.0-flash"))
	})

	t.Run("list without default picks the first entry", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "openai")
		t.Setenv("SUPPORTED_MODELS", "llama-3.1-8b, qwen2.5")

		config, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "llama-3.1-8b", config.LLM.DefaultModel)
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown provider": {
			"LLM_PROVIDER": "claude",
		},
		"default model not supported": {
			"SUPPORTED_MODELS": "gemini-2.0-flash",
			"DEFAULT_MODEL":    "gemini-1.0-pro",
		},
		"zero timeout": {
			"CRAWL_TIMEOUT": "0s",
		},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "설정 검증 실패")
		})
	}
}
