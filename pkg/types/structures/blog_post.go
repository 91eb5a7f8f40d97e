package structure

// BlogPost는 한 번의 본문 추출 동안만 존재하는 블로그 게시글입니다
type BlogPost struct {
	URL string
	// LandingDocument는 사용자가 입력한 주소의 셸 페이지 HTML입니다
	LandingDocument string
	// FrameURL은 mainFrame iframe의 src를 절대 주소로 바꾼 값입니다
	FrameURL string
	// RealDocument는 실제 본문이 담긴 페이지 HTML입니다
	RealDocument string
	// Selector는 본문 영역을 찾은 선택자입니다
	Selector string
	Content  string
}
