package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sh5080/ndns-comment/pkg/configs"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	"github.com/sh5080/ndns-comment/pkg/types"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// NaverBlogClient는 네이버 블로그 페이지를 브라우저처럼 요청하는 클라이언트입니다.
type NaverBlogClient struct {
	_interface.Service
	referer string
}

// NewNaverBlogClient는 새로운 네이버 블로그 클라이언트를 생성합니다.
func NewNaverBlogClient(config *configs.EnvConfig) *NaverBlogClient {
	timeout := types.CRAWL_TIMEOUT
	referer := types.DefaultReferer
	if config != nil {
		if config.Naver.CrawlTimeout > 0 {
			timeout = config.Naver.CrawlTimeout
		}
		if config.Naver.Referer != "" {
			referer = config.Naver.Referer
		}
	}

	return &NaverBlogClient{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: timeout,
			},
			Config: config,
		},
		referer: referer,
	}
}

// FetchDocument는 url의 HTML을 받아 원문과 goquery 문서로 반환합니다.
// 응답 상태와 관계없이 본문을 파싱하며 전송 실패만 에러로 반환합니다.
func (c *NaverBlogClient) FetchDocument(ctx context.Context, url string) (string, *goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, fmt.Errorf("요청 생성 실패: %w", err)
	}

	// 요청 헤더 추가 (브라우저 에뮬레이션)
	req.Header.Set("User-Agent", types.BrowserUserAgent)
	req.Header.Set("Referer", c.referer)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7")

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		utils.RecordApiCall("naver_blog", 0, time.Since(start).Seconds())
		return "", nil, fmt.Errorf("요청 실행 실패: %w", err)
	}
	defer resp.Body.Close()
	utils.RecordApiCall("naver_blog", resp.StatusCode, time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}

	// 오류 페이지도 본문을 파싱해 iframe/선택자 검사에서 판단
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		utils.Warn("naver", "비정상 응답 상태 (%d): %s", resp.StatusCode, url)
	}

	raw := string(body)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return raw, nil, &types.PipelineError{Kind: types.KindParse, Message: "HTML 파싱 실패: " + err.Error(), Err: err}
	}
	return raw, doc, nil
}
