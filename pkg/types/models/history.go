package model

import "time"

// HistoryEntry는 생성된 댓글 하나의 기록입니다. 생성 후에는 바뀌지 않습니다.
type HistoryEntry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	URL        string    `json:"url"`
	UserPhrase string    `json:"extraPhrase"`
	Comment    string    `json:"comment"`
	Model      string    `json:"model"`
}

// SessionSnapshot은 세션 상태의 읽기 전용 복사본입니다
type SessionSnapshot struct {
	Current *HistoryEntry  `json:"current"`
	History []HistoryEntry `json:"history"`
}

// RunOutcome은 백그라운드 실행 한 번의 결과입니다
type RunOutcome struct {
	Entry *HistoryEntry
	Err   error
}
