package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	"github.com/sh5080/ndns-comment/pkg/types"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// CommentGenerator는 블로그 본문으로 이웃 댓글을 생성합니다
type CommentGenerator struct {
	llm _interface.LLMClient
}

var _ _interface.CommentGenerator = (*CommentGenerator)(nil)

func NewCommentGenerator(llm _interface.LLMClient) *CommentGenerator {
	return &CommentGenerator{llm: llm}
}

// Generate는 content를 축약하고 프롬프트를 만들어 모델을 한 번 호출합니다.
// 백엔드 오류는 메시지를 그대로 담은 Generation 오류로 반환합니다.
// 모델 응답의 "댓글 :" 머리말은 제거하지 않습니다.
func (g *CommentGenerator) Generate(ctx context.Context, apiKey, modelName, content, extraPhrase string) (string, error) {
	prompt := BuildPrompt(TruncateContent(content), extraPhrase)

	text, err := g.llm.Complete(ctx, apiKey, modelName, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("모델 응답이 비어 있습니다")
	}
	if err != nil {
		utils.Error("generator", "AI 에러: %v", err)
		utils.RecordPipeline("generate", string(types.KindGeneration))
		return "", types.GenerationError(err)
	}

	utils.RecordPipeline("generate", "success")
	return text, nil
}

// TruncateContent는 2000자를 넘는 본문을 앞 1000자, 생략 표시, 뒤 1000자로 줄입니다.
// 길이는 바이트가 아닌 글자(rune) 기준입니다.
func TruncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= types.MAX_CONTENT_LENGTH {
		return content
	}
	head := string(runes[:types.EXCERPT_HEAD])
	tail := string(runes[len(runes)-types.EXCERPT_TAIL:])
	return head + types.ELISION_MARKER + tail
}

// BuildPrompt는 댓글 작성 지시문을 만듭니다. extraPhrase가 비어 있으면 추가 문구 항목을 생략합니다.
func BuildPrompt(content, extraPhrase string) string {
	var sb strings.Builder
	sb.WriteString("네이버 블로그 소통 전문가로서 정중한 댓글을 작성하세요.\n")
	sb.WriteString("1. 요약: 1문장 요약.\n")
	sb.WriteString("2. 댓글: 본문 내용 공감 및 칭찬.\n")
	sb.WriteString(fmt.Sprintf("3. 요청: 마지막에 \"%s\" 포함.\n", types.ClosingRequest))
	if extraPhrase != "" {
		sb.WriteString(fmt.Sprintf("4. 추가 문구: \"%s\"\n", extraPhrase))
	}
	sb.WriteString("\n[본문]\n")
	sb.WriteString(content)
	sb.WriteString("\n\n[출력 형식]\n")
	sb.WriteString(types.CommentHeader)
	sb.WriteString("\n")
	return sb.String()
}
