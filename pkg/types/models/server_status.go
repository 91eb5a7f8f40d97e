package model

import (
	"time"
)

// ServerStatus는 서버의 현재 상태와 성능 지표를 나타냅니다
type ServerStatus struct {
	// =================== 기본 식별 정보 ===================
	AppName     string    `json:"appName"`
	Version     string    `json:"version"`
	Provider    string    `json:"provider"`    // 댓글 생성에 사용하는 LLM 제공자
	LastUpdated time.Time `json:"lastUpdated"`

	// =================== 서버 상태 요약 ===================
	Load      float64 `json:"load"`      // 서버 부하 (0-1) - CPU와 메모리 가중 평균
	IsHealthy bool    `json:"isHealthy"`
	Capacity  float64 `json:"capacity"`  // 처리 용량 (0-1)

	// =================== 시스템 성능 지표 ===================
	CpuUsage    float64 `json:"cpuUsage"`    // CPU 사용률 (0-1)
	MemoryUsage float64 `json:"memoryUsage"` // 메모리 사용률 (0-1)

	// =================== 세션 ===================
	HistorySize int  `json:"historySize"`
	HasCurrent  bool `json:"hasCurrent"`
}
