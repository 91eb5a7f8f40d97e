package types

import (
	"errors"
	"fmt"
)

// ErrorKind는 파이프라인 실패의 분류입니다
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"
	KindNotFound   ErrorKind = "not_found"
	KindParse      ErrorKind = "parse"
	KindGeneration ErrorKind = "generation"
)

// PipelineError는 본문 추출 또는 댓글 생성 단계의 실패를 나타냅니다.
// Message는 사용자에게 그대로 보여줄 수 있는 문장입니다.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NetworkError(err error) *PipelineError {
	return &PipelineError{Kind: KindNetwork, Message: err.Error(), Err: err}
}

func NotFoundError(message string) *PipelineError {
	return &PipelineError{Kind: KindNotFound, Message: message}
}

func ParseError(format string, args ...interface{}) *PipelineError {
	err := fmt.Errorf(format, args...)
	return &PipelineError{Kind: KindParse, Message: err.Error(), Err: errors.Unwrap(err)}
}

// GenerationError는 백엔드 오류 메시지를 가공하지 않고 그대로 담습니다
func GenerationError(err error) *PipelineError {
	return &PipelineError{Kind: KindGeneration, Message: err.Error(), Err: err}
}

// KindOf는 err 체인에서 PipelineError의 분류를 찾습니다. 없으면 빈 문자열입니다.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
