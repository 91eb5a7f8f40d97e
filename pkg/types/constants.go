package types

import "time"

// 블로그 플랫폼 관련 고정값
const (
	// MainFrameID는 네이버 블로그 셸 페이지가 본문을 싣는 iframe의 id입니다
	MainFrameID = "mainFrame"

	DefaultBlogDomain = "https://blog.naver.com"
	DefaultReferer    = "https://section.blog.naver.com/"

	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// 본문 영역 선택자 (최신 템플릿 우선)
var CONTENT_SELECTORS = []string{
	"div.se-main-container", // 스마트에디터 ONE
	"div#post-view-area",    // 구버전 포스트 뷰
	"div.se-viewer",         // 뷰어 컨테이너
}

// 타임아웃 시간
const CRAWL_TIMEOUT = 10 * time.Second

// 본문 축약 설정
const (
	MAX_CONTENT_LENGTH = 2000
	EXCERPT_HEAD       = 1000
	EXCERPT_TAIL       = 1000
	ELISION_MARKER     = "\n...(중략)...\n"

	LOG_PREVIEW_LENGTH = 500
)

// 사용자에게 보여주는 메시지
const (
	MsgPostAddressIncomplete = "게시글 세부 주소를 입력해주세요."
	MsgContentNotFound       = "본문 태그를 찾지 못했습니다."
	MsgContentEmpty          = "본문 내용이 비어 있습니다."
	MsgMissingInput          = "API Key와 URL을 입력해주세요."
)

// 댓글 마무리 문구와 출력 형식 헤더
const (
	ClosingRequest = "서로이웃 맺고 소통하며 지내고 싶어요 :)"
	CommentHeader  = "댓글 :"
)
