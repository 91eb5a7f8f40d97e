package session

import (
	"sync"

	model "github.com/sh5080/ndns-comment/pkg/types/models"
)

// Session은 한 사용자의 최신 결과와 이전 기록을 보관합니다.
// History는 최신순이며 명시적으로 Clear할 때만 비워집니다.
type Session struct {
	mu      sync.Mutex
	current *model.HistoryEntry
	history []model.HistoryEntry
}

func New() *Session {
	return &Session{}
}

// Promote는 entry를 최신 결과로 만들고, 기존 최신 결과는 기록의 맨 앞으로 옮깁니다
func (s *Session) Promote(entry model.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.history = append([]model.HistoryEntry{*s.current}, s.history...)
	}
	s.current = &entry
}

// Clear는 최신 결과와 기록을 모두 비웁니다
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.history = nil
}

// Current는 최신 결과의 복사본을 반환합니다. 없으면 nil입니다.
func (s *Session) Current() *model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	entry := *s.current
	return &entry
}

// Snapshot은 화면 표시용 복사본을 반환합니다
func (s *Session) Snapshot() model.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := model.SessionSnapshot{History: make([]model.HistoryEntry, len(s.history))}
	copy(snap.History, s.history)
	if s.current != nil {
		entry := *s.current
		snap.Current = &entry
	}
	return snap
}
