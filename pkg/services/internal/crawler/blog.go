package crawler

import (
	"context"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	client "github.com/sh5080/ndns-comment/pkg/clients"
	"github.com/sh5080/ndns-comment/pkg/configs"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	"github.com/sh5080/ndns-comment/pkg/types"
	structure "github.com/sh5080/ndns-comment/pkg/types/structures"
	"github.com/sh5080/ndns-comment/pkg/utils"
	"golang.org/x/net/html"
)

// Fetcher는 HTML 문서를 가져오는 클라이언트입니다
type Fetcher interface {
	FetchDocument(ctx context.Context, url string) (string, *goquery.Document, error)
}

// ContentMatcher는 본문 영역을 찾는 전략 하나입니다. 찾지 못하면 ok가 false입니다.
type ContentMatcher struct {
	Name  string
	Match func(doc *goquery.Document) (sel *goquery.Selection, ok bool)
}

// SelectorMatcher는 CSS 선택자의 첫 번째 일치 요소를 찾는 전략을 만듭니다
func SelectorMatcher(selector string) ContentMatcher {
	return ContentMatcher{
		Name: selector,
		Match: func(doc *goquery.Document) (*goquery.Selection, bool) {
			sel := doc.Find(selector).First()
			return sel, sel.Length() > 0
		},
	}
}

// DefaultMatchers는 네이버 블로그 템플릿의 본문 선택자를 최신 순으로 반환합니다
func DefaultMatchers() []ContentMatcher {
	matchers := make([]ContentMatcher, 0, len(types.CONTENT_SELECTORS))
	for _, s := range types.CONTENT_SELECTORS {
		matchers = append(matchers, SelectorMatcher(s))
	}
	return matchers
}

// BlogExtractor는 네이버 블로그의 iframe 구조를 따라 본문 텍스트를 추출합니다
type BlogExtractor struct {
	fetcher    Fetcher
	blogDomain string
	matchers   []ContentMatcher
}

var _ _interface.ContentExtractor = (*BlogExtractor)(nil)

// NewBlogExtractor는 설정을 바탕으로 새 추출기를 생성합니다
func NewBlogExtractor(config *configs.EnvConfig) *BlogExtractor {
	domain := types.DefaultBlogDomain
	if config != nil && config.Naver.BlogDomain != "" {
		domain = config.Naver.BlogDomain
	}
	return NewBlogExtractorWith(client.NewNaverBlogClient(config), domain, DefaultMatchers())
}

// NewBlogExtractorWith는 fetcher와 본문 탐색 전략을 직접 지정해 추출기를 생성합니다
func NewBlogExtractorWith(fetcher Fetcher, blogDomain string, matchers []ContentMatcher) *BlogExtractor {
	return &BlogExtractor{
		fetcher:    fetcher,
		blogDomain: strings.TrimRight(blogDomain, "/"),
		matchers:   matchers,
	}
}

// Extract는 게시글 주소에서 본문 텍스트를 추출합니다.
// 실패하면 *types.PipelineError를 반환하며 빈 문자열을 성공으로 반환하지 않습니다.
func (e *BlogExtractor) Extract(ctx context.Context, url string) (string, error) {
	post, err := e.ExtractPost(ctx, url)
	if err != nil {
		return "", err
	}
	return post.Content, nil
}

// ExtractPost는 Extract와 같지만 중간 문서와 일치한 선택자를 함께 반환합니다
func (e *BlogExtractor) ExtractPost(ctx context.Context, url string) (*structure.BlogPost, error) {
	post := &structure.BlogPost{URL: strings.TrimSpace(url)}

	utils.Info("crawler", "==================== [분석 시작: %s] ====================", post.URL)

	if post.URL == "" {
		return nil, e.fail("extract", types.NotFoundError(types.MsgPostAddressIncomplete))
	}

	raw, landing, err := e.fetcher.FetchDocument(ctx, post.URL)
	if err != nil {
		return nil, e.fail("extract", classify(err))
	}
	post.LandingDocument = raw

	iframe := landing.Find("iframe#" + types.MainFrameID).First()
	if iframe.Length() == 0 {
		return nil, e.fail("extract", types.NotFoundError(types.MsgPostAddressIncomplete))
	}

	src, _ := iframe.Attr("src")
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, e.fail("extract", types.ParseError("%s iframe에 src 속성이 없습니다", types.MainFrameID))
	}
	post.FrameURL = e.resolveFrameURL(src)

	raw, doc, err := e.fetcher.FetchDocument(ctx, post.FrameURL)
	if err != nil {
		return nil, e.fail("extract", classify(err))
	}
	post.RealDocument = raw

	content, selector, found := e.findContent(doc)
	if !found {
		return nil, e.fail("extract", types.NotFoundError(types.MsgContentNotFound))
	}
	post.Selector = selector

	post.Content = VisibleText(content)
	if post.Content == "" {
		return nil, e.fail("extract", types.NotFoundError(types.MsgContentEmpty))
	}

	utils.Info("crawler", "--- [추출 본문 로그] ---\n%s...\n----------------------", Preview(post.Content, types.LOG_PREVIEW_LENGTH))
	utils.RecordPipeline("extract", "success")
	return post, nil
}

func (e *BlogExtractor) resolveFrameURL(src string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	if !strings.HasPrefix(src, "/") {
		src = "/" + src
	}
	return e.blogDomain + src
}

// findContent는 전략을 순서대로 시도하고 처음 일치한 결과를 반환합니다
func (e *BlogExtractor) findContent(doc *goquery.Document) (*goquery.Selection, string, bool) {
	for _, m := range e.matchers {
		if sel, ok := m.Match(doc); ok {
			return sel, m.Name, true
		}
	}
	return nil, "", false
}

func (e *BlogExtractor) fail(stage string, err *types.PipelineError) *types.PipelineError {
	if err.Kind == types.KindNetwork {
		utils.Error("crawler", "크롤링 에러: %v", err)
	} else {
		utils.Warn("crawler", "본문 추출 실패 (%s): %v", err.Kind, err)
	}
	utils.RecordPipeline(stage, string(err.Kind))
	return err
}

func classify(err error) *types.PipelineError {
	var pe *types.PipelineError
	if errors.As(err, &pe) {
		return pe
	}
	return types.NetworkError(err)
}

// VisibleText는 선택 영역의 텍스트 노드를 각각 다듬어 줄바꿈으로 잇습니다.
// script, style, 주석은 제외합니다.
func VisibleText(sel *goquery.Selection) string {
	var parts []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}

// Preview는 text의 앞부분을 최대 limit 글자(rune)만큼 반환합니다
func Preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
