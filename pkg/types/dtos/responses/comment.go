package response

import model "github.com/sh5080/ndns-comment/pkg/types/models"

// Comment는 댓글 생성 성공 응답입니다
type Comment struct {
	Current model.HistoryEntry `json:"current"`
}

// Error는 실패 응답입니다. Kind는 파이프라인 실패일 때만 채워집니다.
type Error struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Models는 선택 가능한 모델 목록입니다
type Models struct {
	Provider string   `json:"provider"`
	Default  string   `json:"default"`
	Models   []string `json:"models"`
}
