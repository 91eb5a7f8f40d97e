package crawler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sh5080/ndns-comment/pkg/configs"
	"github.com/sh5080/ndns-comment/pkg/types"
	"github.com/sh5080/ndns-comment/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const landingWithFrame = `<html><head><title>블로그</title></head><body>
<iframe id="mainFrame" name="mainFrame" src="/PostView.naver?blogId=tester&logNo=1"></iframe>
</body></html>`

const landingWithoutFrame = `<html><body><div class="section">블로그 홈</div></body></html>`

// fakeBlog는 셸 페이지와 PostView 페이지를 흉내 내는 테스트 서버입니다
type fakeBlog struct {
	server      *httptest.Server
	landing     string
	post        string
	postHits    atomic.Int32
	landingHits atomic.Int32
	userAgent   atomic.Value
	referer     atomic.Value
}

func newFakeBlog(t *testing.T, landing, post string) *fakeBlog {
	t.Helper()
	fb := &fakeBlog{landing: landing, post: post}
	fb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.userAgent.Store(r.Header.Get("User-Agent"))
		fb.referer.Store(r.Header.Get("Referer"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		switch r.URL.Path {
		case "/PostView.naver":
			fb.postHits.Add(1)
			fmt.Fprint(w, fb.post)
		default:
			fb.landingHits.Add(1)
			fmt.Fprint(w, fb.landing)
		}
	}))
	t.Cleanup(fb.server.Close)
	return fb
}

func (fb *fakeBlog) extractor() *BlogExtractor {
	config := &configs.EnvConfig{}
	config.Naver.BlogDomain = fb.server.URL
	config.Naver.Referer = types.DefaultReferer
	config.Naver.CrawlTimeout = 2 * time.Second
	return NewBlogExtractor(config)
}

func (fb *fakeBlog) postURL() string {
	return fb.server.URL + "/tester/1"
}

func TestBlogExtractor_Extract_SmartEditorContent(t *testing.T) {
	post := `<html><body>
<div class="se-main-container">
  <div class="se-module-text"><p>  첫 번째 문단입니다.  </p></div>
  <script>var tracking = "ignore me";</script>
  <style>.x { color: red; }</style>
  <!-- 주석은 제외 -->
  <div class="se-module-text"><p>두 번째 <b>문단</b>입니다.</p><p>   </p></div>
</div>
</body></html>`
	fb := newFakeBlog(t, landingWithFrame, post)

	text, err := fb.extractor().Extract(context.Background(), "  "+fb.postURL()+"\n")
	require.NoError(t, err)

	assert.Equal(t, "첫 번째 문단입니다.\n두 번째\n문단\n입니다.", text)
	assert.NotContains(t, text, "ignore me")
	assert.NotContains(t, text, "color")
	assert.NotContains(t, text, "주석")
	assert.EqualValues(t, 1, fb.landingHits.Load())
	assert.EqualValues(t, 1, fb.postHits.Load())
	assert.Equal(t, types.BrowserUserAgent, fb.userAgent.Load())
	assert.Equal(t, types.DefaultReferer, fb.referer.Load())
}

func TestBlogExtractor_Extract_SelectorPriority(t *testing.T) {
	tests := map[string]struct {
		post     string
		expected string
		selector string
	}{
		"legacy post view area": {
			post:     `<div id="post-view-area"><p>구버전 본문</p></div><div class="se-viewer"><p>뷰어</p></div>`,
			expected: "구버전 본문",
			selector: "div#post-view-area",
		},
		"viewer fallback": {
			post:     `<div class="se-viewer"><p>뷰어 본문</p></div>`,
			expected: "뷰어 본문",
			selector: "div.se-viewer",
		},
		"newest template wins when several exist": {
			post:     `<div class="se-viewer"><p>뷰어</p></div><div id="post-view-area"><p>구버전</p></div><div class="se-main-container"><p>최신</p></div>`,
			expected: "최신",
			selector: "div.se-main-container",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			fb := newFakeBlog(t, landingWithFrame, "<html><body>"+tc.post+"</body></html>")

			post, err := fb.extractor().ExtractPost(context.Background(), fb.postURL())
			require.NoError(t, err)
			assert.Equal(t, tc.expected, post.Content)
			assert.Equal(t, tc.selector, post.Selector)
			assert.Equal(t, fb.server.URL+"/PostView.naver?blogId=tester&logNo=1", post.FrameURL)
		})
	}
}

func TestBlogExtractor_Extract_MissingMainFrame(t *testing.T) {
	fb := newFakeBlog(t, landingWithoutFrame, `<div class="se-main-container">본문</div>`)

	text, err := fb.extractor().Extract(context.Background(), fb.postURL())
	require.Error(t, err)

	assert.Empty(t, text)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
	assert.Equal(t, "게시글 세부 주소를 입력해주세요.", err.Error())
	assert.EqualValues(t, 1, fb.landingHits.Load())
	assert.EqualValues(t, 0, fb.postHits.Load(), "second fetch must not happen")
}

func TestBlogExtractor_Extract_ContentNotFound(t *testing.T) {
	fb := newFakeBlog(t, landingWithFrame, `<html><body><div class="other">광고</div></body></html>`)

	_, err := fb.extractor().Extract(context.Background(), fb.postURL())
	require.Error(t, err)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
	assert.Equal(t, types.MsgContentNotFound, err.Error())
}

func TestBlogExtractor_Extract_EmptyContentIsFailure(t *testing.T) {
	fb := newFakeBlog(t, landingWithFrame, `<div class="se-main-container">  <p> </p><script>x()</script></div>`)

	text, err := fb.extractor().Extract(context.Background(), fb.postURL())
	require.Error(t, err)
	assert.Empty(t, text)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
}

func TestBlogExtractor_Extract_FrameWithoutSrc(t *testing.T) {
	fb := newFakeBlog(t, `<iframe id="mainFrame"></iframe>`, "")

	_, err := fb.extractor().Extract(context.Background(), fb.postURL())
	require.Error(t, err)
	assert.Equal(t, types.KindParse, types.KindOf(err))
	assert.EqualValues(t, 0, fb.postHits.Load())
}

func TestBlogExtractor_Extract_EmptyURL(t *testing.T) {
	fb := newFakeBlog(t, landingWithFrame, "")

	_, err := fb.extractor().Extract(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
	assert.EqualValues(t, 0, fb.landingHits.Load())
}

func TestBlogExtractor_Extract_NetworkFailure(t *testing.T) {
	fb := newFakeBlog(t, landingWithFrame, "")
	extractor := fb.extractor()
	url := fb.postURL()
	fb.server.Close()

	_, err := extractor.Extract(context.Background(), url)
	require.Error(t, err)
	assert.Equal(t, types.KindNetwork, types.KindOf(err))
}

func TestBlogExtractor_Extract_HTTPErrorOnPostPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/PostView.naver" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `<html><body>페이지를 찾을 수 없습니다</body></html>`)
			return
		}
		fmt.Fprint(w, landingWithFrame)
	}))
	defer srv.Close()

	config := &configs.EnvConfig{}
	config.Naver.BlogDomain = srv.URL
	config.Naver.CrawlTimeout = time.Second

	_, err := NewBlogExtractor(config).Extract(context.Background(), srv.URL+"/tester/1")
	require.Error(t, err)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
	assert.Equal(t, types.MsgContentNotFound, err.Error())
}

func TestBlogExtractor_Extract_NotFoundLandingPage(t *testing.T) {
	var postHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/PostView.naver" {
			postHits.Add(1)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `<html><body>존재하지 않는 게시글</body></html>`)
	}))
	defer srv.Close()

	config := &configs.EnvConfig{}
	config.Naver.BlogDomain = srv.URL
	config.Naver.CrawlTimeout = time.Second

	_, err := NewBlogExtractor(config).Extract(context.Background(), srv.URL+"/tester")
	require.Error(t, err)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
	assert.Equal(t, types.MsgPostAddressIncomplete, err.Error())
	assert.Zero(t, postHits.Load())
}

type stubFetcher struct {
	docs  map[string]string
	calls []string
}

func (s *stubFetcher) FetchDocument(_ context.Context, url string) (string, *goquery.Document, error) {
	s.calls = append(s.calls, url)
	raw, ok := s.docs[url]
	if !ok {
		return "", nil, fmt.Errorf("unexpected url %s", url)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	return raw, doc, err
}

func TestBlogExtractor_ResolvesFrameSource(t *testing.T) {
	tests := map[string]struct {
		src      string
		expected string
	}{
		"relative path": {
			src:      "/PostView.naver?blogId=a&logNo=2",
			expected: "https://blog.naver.com/PostView.naver?blogId=a&logNo=2",
		},
		"path without leading slash": {
			src:      "PostView.naver?blogId=a&logNo=2",
			expected: "https://blog.naver.com/PostView.naver?blogId=a&logNo=2",
		},
		"absolute url": {
			src:      "https://blog.naver.com/PostView.naver?blogId=a&logNo=3",
			expected: "https://blog.naver.com/PostView.naver?blogId=a&logNo=3",
		},
		"scheme relative url": {
			src:      "//blog.naver.com/PostView.naver?blogId=a&logNo=4",
			expected: "https://blog.naver.com/PostView.naver?blogId=a&logNo=4",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			landingURL := "https://blog.naver.com/a/2"
			fetcher := &stubFetcher{docs: map[string]string{
				landingURL:  fmt.Sprintf(`<iframe id="mainFrame" src="%s"></iframe>`, tc.src),
				tc.expected: `<div class="se-main-container">본문</div>`,
			}}
			extractor := NewBlogExtractorWith(fetcher, "https://blog.naver.com/", DefaultMatchers())

			text, err := extractor.Extract(context.Background(), landingURL)
			require.NoError(t, err)
			assert.Equal(t, "본문", text)
			assert.Equal(t, []string{landingURL, tc.expected}, fetcher.calls)
		})
	}
}

func TestBlogExtractor_CustomMatchers(t *testing.T) {
	landingURL := "https://blog.naver.com/a/5"
	frameURL := "https://blog.naver.com/PostView.naver?logNo=5"
	fetcher := &stubFetcher{docs: map[string]string{
		landingURL: `<iframe id="mainFrame" src="/PostView.naver?logNo=5"></iframe>`,
		frameURL:   `<article><p>사용자 정의</p></article>`,
	}}

	never := ContentMatcher{Name: "never", Match: func(*goquery.Document) (*goquery.Selection, bool) { return nil, false }}
	extractor := NewBlogExtractorWith(fetcher, types.DefaultBlogDomain, []ContentMatcher{never, SelectorMatcher("article")})

	post, err := extractor.ExtractPost(context.Background(), landingURL)
	require.NoError(t, err)
	assert.Equal(t, "article", post.Selector)
	assert.Equal(t, "사용자 정의", post.Content)
}

func TestBlogExtractor_LogsPreviewToSink(t *testing.T) {
	sink, err := utils.NewLogSink(filepath.Join(t.TempDir(), "agent.log"))
	require.NoError(t, err)
	utils.AttachSink(sink)
	defer utils.AttachSink(nil)

	long := strings.Repeat("가", 800)
	fb := newFakeBlog(t, landingWithFrame, `<div class="se-main-container"><p>`+long+`</p></div>`)

	text, err := fb.extractor().Extract(context.Background(), fb.postURL())
	require.NoError(t, err)
	assert.Equal(t, long, text, "preview logging must not change the returned text")

	logged, err := os.ReadFile(sink.Path())
	require.NoError(t, err)
	assert.Contains(t, string(logged), "[분석 시작: "+fb.postURL()+"]")
	assert.Contains(t, string(logged), strings.Repeat("가", 500)+"...")
	assert.NotContains(t, string(logged), strings.Repeat("가", 501))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "abc", Preview("abc", 5))
	assert.Equal(t, "안녕", Preview("안녕하세요", 2))
}
