package service

import (
	"time"

	"github.com/sh5080/ndns-comment/pkg/configs"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	model "github.com/sh5080/ndns-comment/pkg/types/models"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// ServerStatusService는 서버 상태를 계산하는 서비스입니다.
type ServerStatusService struct {
	config *configs.EnvConfig
	agent  _interface.CommentAgent

	// 테스트에서 호스트 측정을 대체하기 위한 함수
	systemMetrics func() (float64, float64)
}

// 인터페이스 구현 확인
var _ _interface.ServerStatusService = (*ServerStatusService)(nil)

// NewServerStatusService는 새로운 서버 상태 서비스를 생성합니다.
func NewServerStatusService(config *configs.EnvConfig, agent _interface.CommentAgent) *ServerStatusService {
	return &ServerStatusService{
		config:        config,
		agent:         agent,
		systemMetrics: utils.GetSystemMetrics,
	}
}

// GetServerStatus는 현재 서버의 상태 정보를 반환하고 Prometheus 게이지를 갱신합니다.
func (s *ServerStatusService) GetServerStatus() *model.ServerStatus {
	evaluated := utils.EvaluateSystem(s.systemMetrics())
	snap := s.agent.Snapshot()

	status := &model.ServerStatus{
		AppName:     s.config.Server.AppName,
		Version:     configs.AppVersion,
		Provider:    s.config.LLM.Provider,
		LastUpdated: time.Now(),

		Load:      evaluated.Load,
		IsHealthy: evaluated.IsHealthy,
		Capacity:  evaluated.Capacity,

		CpuUsage:    evaluated.CpuUsage,
		MemoryUsage: evaluated.MemoryUsage,

		HistorySize: len(snap.History),
		HasCurrent:  snap.Current != nil,
	}

	healthValue := 0.0
	if status.IsHealthy {
		healthValue = 1.0
	}
	utils.UpdateServerMetric(status.AppName, "load", status.Load)
	utils.UpdateServerMetric(status.AppName, "capacity", status.Capacity)
	utils.UpdateServerMetric(status.AppName, "healthy", healthValue)

	return status
}
