package request

import "strings"

// CreateComment는 댓글 생성 요청 본문입니다
type CreateComment struct {
	URL         string `json:"url" validate:"max=2048"`
	APIKey      string `json:"apiKey,omitempty"`
	Model       string `json:"model,omitempty"`
	ExtraPhrase string `json:"extraPhrase,omitempty" validate:"max=500"`
}

// Trim은 API 키와 모델 이름의 공백을 제거합니다. URL은 추출 단계에서 정리합니다.
func (r *CreateComment) Trim() {
	r.APIKey = strings.TrimSpace(r.APIKey)
	r.Model = strings.TrimSpace(r.Model)
}
