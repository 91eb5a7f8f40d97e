package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	"github.com/sh5080/ndns-comment/pkg/services/internal/session"
	request "github.com/sh5080/ndns-comment/pkg/types/dtos/requests"
	model "github.com/sh5080/ndns-comment/pkg/types/models"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// CommentAgent는 본문 추출과 댓글 생성을 차례로 실행하고 결과를 세션에 반영합니다
type CommentAgent struct {
	extractor _interface.ContentExtractor
	generator _interface.CommentGenerator
	session   *session.Session
	sink      *utils.LogSink

	now   func() time.Time
	newID func() string
}

var _ _interface.CommentAgent = (*CommentAgent)(nil)

// NewCommentAgent는 새 에이전트를 생성합니다. sink가 nil이면 로그 초기화를 건너뜁니다.
func NewCommentAgent(extractor _interface.ContentExtractor, generator _interface.CommentGenerator, sess *session.Session, sink *utils.LogSink) *CommentAgent {
	return &CommentAgent{
		extractor: extractor,
		generator: generator,
		session:   sess,
		sink:      sink,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Run은 추출 후 생성을 실행합니다. 어느 단계든 실패하면 세션은 바뀌지 않습니다.
func (a *CommentAgent) Run(ctx context.Context, req request.CreateComment) (*model.HistoryEntry, error) {
	text, err := a.extractor.Extract(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	// 두 단계 사이의 취소 지점
	if err := ctx.Err(); err != nil {
		utils.Warn("agent", "추출 후 요청이 취소되었습니다: %v", err)
		return nil, fmt.Errorf("요청이 취소되었습니다: %w", err)
	}

	comment, err := a.generator.Generate(ctx, req.APIKey, req.Model, text, req.ExtraPhrase)
	if err != nil {
		return nil, err
	}

	entry := model.HistoryEntry{
		ID:         a.newID(),
		Timestamp:  a.now(),
		URL:        req.URL,
		UserPhrase: req.ExtraPhrase,
		Comment:    comment,
		Model:      req.Model,
	}
	a.session.Promote(entry)
	utils.Info("agent", "새로운 댓글이 생성되었습니다 (id=%s, model=%s)", entry.ID, entry.Model)

	return &entry, nil
}

// RunAsync는 Run을 별도 고루틴에서 실행하고 결과를 채널로 한 번 보냅니다
func (a *CommentAgent) RunAsync(ctx context.Context, req request.CreateComment) <-chan model.RunOutcome {
	out := make(chan model.RunOutcome, 1)
	go func() {
		defer close(out)
		entry, err := a.Run(ctx, req)
		out <- model.RunOutcome{Entry: entry, Err: err}
	}()
	return out
}

// Snapshot은 현재 세션 상태를 반환합니다
func (a *CommentAgent) Snapshot() model.SessionSnapshot {
	return a.session.Snapshot()
}

// ClearAll은 기록과 최신 결과를 지우고 로그 파일을 비웁니다
func (a *CommentAgent) ClearAll() error {
	a.session.Clear()
	if a.sink == nil {
		return nil
	}
	if err := a.sink.Reset(); err != nil {
		utils.Error("agent", "로그 파일 초기화 실패: %v", err)
		return err
	}
	return nil
}
