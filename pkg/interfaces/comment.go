package _interface

import (
	"context"

	request "github.com/sh5080/ndns-comment/pkg/types/dtos/requests"
	model "github.com/sh5080/ndns-comment/pkg/types/models"
)

// ContentExtractor는 블로그 게시글 주소에서 본문 텍스트를 추출합니다
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// CommentGenerator는 본문과 추가 문구로 댓글을 생성합니다
type CommentGenerator interface {
	Generate(ctx context.Context, apiKey, modelName, content, extraPhrase string) (string, error)
}

// LLMClient는 프롬프트 하나를 모델에 보내고 응답 텍스트를 받습니다
type LLMClient interface {
	Complete(ctx context.Context, apiKey, modelName, prompt string) (string, error)
}

// CommentAgent는 추출과 생성을 차례로 수행하고 세션을 갱신합니다
type CommentAgent interface {
	Run(ctx context.Context, req request.CreateComment) (*model.HistoryEntry, error)
	RunAsync(ctx context.Context, req request.CreateComment) <-chan model.RunOutcome
	Snapshot() model.SessionSnapshot
	ClearAll() error
}
