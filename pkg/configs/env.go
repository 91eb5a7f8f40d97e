package configs

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

// 지원하는 LLM 제공자
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// 제공자별 기본 모델 목록. 첫 번째가 기본 모델입니다.
var providerModels = map[string][]string{
	ProviderGemini: {"gemini-2.0-flash", "gemini-2.5-flash-preview-09-2025", "gemini-3-flash-preview"},
	ProviderOpenAI: {"gpt-4o-mini", "gpt-4o"},
}

type EnvConfig struct {
	Server struct {
		Port    string `mapstructure:"PORT"`
		AppName string `mapstructure:"APP_NAME"`
		AppEnv  string `mapstructure:"APP_ENV"`
		LogFile string `mapstructure:"LOG_FILE"`
	}
	LLM struct {
		Provider        string   `mapstructure:"LLM_PROVIDER"`
		GeminiAPIKey    string   `mapstructure:"GEMINI_API_KEY"`
		OpenAIAPIKey    string   `mapstructure:"OPENAI_API_KEY"`
		OpenAIBaseURL   string   `mapstructure:"OPENAI_BASE_URL"`
		DefaultModel    string   `mapstructure:"DEFAULT_MODEL"`
		SupportedModels []string `mapstructure:"SUPPORTED_MODELS"`
	}
	Naver struct {
		BlogDomain   string        `mapstructure:"NAVER_BLOG_DOMAIN"`
		Referer      string        `mapstructure:"NAVER_REFERER"`
		CrawlTimeout time.Duration `mapstructure:"CRAWL_TIMEOUT"`
	}
}

// APIKey는 설정된 제공자의 기본 API 키를 반환합니다
func (c *EnvConfig) APIKey() string {
	if c.LLM.Provider == ProviderOpenAI {
		return c.LLM.OpenAIAPIKey
	}
	return c.LLM.GeminiAPIKey
}

// IsSupportedModel은 모델 이름이 허용 목록에 있는지 확인합니다
func (c *EnvConfig) IsSupportedModel(model string) bool {
	for _, m := range c.LLM.SupportedModels {
		if m == model {
			return true
		}
	}
	return false
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_NAME", "blog-comment-agent")
	v.SetDefault("APP_ENV", "prod")
	v.SetDefault("LOG_FILE", "blog_agent_log.txt")

	v.SetDefault("LLM_PROVIDER", ProviderGemini)

	v.SetDefault("NAVER_BLOG_DOMAIN", "https://blog.naver.com")
	v.SetDefault("NAVER_REFERER", "https://section.blog.naver.com/")
	v.SetDefault("CRAWL_TIMEOUT", "10s")
}

// Load는 .env 파일과 환경 변수에서 설정을 읽고 검증합니다
func Load() (*EnvConfig, error) {
	// .env 파일이 없으면 환경 변수만 사용
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	config := &EnvConfig{}
	config.Server.Port = v.GetString("PORT")
	config.Server.AppName = v.GetString("APP_NAME")
	config.Server.AppEnv = v.GetString("APP_ENV")
	config.Server.LogFile = v.GetString("LOG_FILE")

	config.LLM.Provider = strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER")))
	config.LLM.GeminiAPIKey = v.GetString("GEMINI_API_KEY")
	config.LLM.OpenAIAPIKey = v.GetString("OPENAI_API_KEY")
	config.LLM.OpenAIBaseURL = v.GetString("OPENAI_BASE_URL")
	config.LLM.DefaultModel = strings.TrimSpace(v.GetString("DEFAULT_MODEL"))
	config.LLM.SupportedModels = splitList(v.GetString("SUPPORTED_MODELS"))
	applyModelDefaults(config)

	config.Naver.BlogDomain = strings.TrimRight(v.GetString("NAVER_BLOG_DOMAIN"), "/")
	config.Naver.Referer = v.GetString("NAVER_REFERER")
	config.Naver.CrawlTimeout = v.GetDuration("CRAWL_TIMEOUT")

	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// applyModelDefaults는 비어 있는 모델 설정을 제공자에 맞게 채웁니다.
// 목록만 지정되면 첫 번째 항목이 기본 모델이 됩니다.
func applyModelDefaults(config *EnvConfig) {
	if len(config.LLM.SupportedModels) == 0 {
		config.LLM.SupportedModels = append([]string(nil), providerModels[config.LLM.Provider]...)
	}
	if config.LLM.DefaultModel == "" && len(config.LLM.SupportedModels) > 0 {
		config.LLM.DefaultModel = config.LLM.SupportedModels[0]
	}
}

func validate(config *EnvConfig) error {
	var problems []string

	switch config.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		problems = append(problems, fmt.Sprintf("LLM_PROVIDER 값이 올바르지 않습니다: %q", config.LLM.Provider))
	}
	if len(config.LLM.SupportedModels) == 0 {
		problems = append(problems, "SUPPORTED_MODELS가 비어 있습니다")
	} else if !config.IsSupportedModel(config.LLM.DefaultModel) {
		problems = append(problems, fmt.Sprintf("DEFAULT_MODEL(%s)이 SUPPORTED_MODELS에 없습니다", config.LLM.DefaultModel))
	}
	if config.Naver.CrawlTimeout <= 0 {
		problems = append(problems, "CRAWL_TIMEOUT은 0보다 커야 합니다")
	}
	if config.Naver.BlogDomain == "" {
		problems = append(problems, "NAVER_BLOG_DOMAIN이 비어 있습니다")
	}

	if len(problems) > 0 {
		return fmt.Errorf("설정 검증 실패: %s", strings.Join(problems, ", "))
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		config, err := Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		configInstance = config
		fmt.Printf("환경 변수 로드 완료 (앱 버전: %s)\n", AppVersion)
	})
	return configInstance
}
