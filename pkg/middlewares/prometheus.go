package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// Prometheus 미들웨어는 HTTP 요청에 대한 메트릭을 수집합니다
func Prometheus(serverName string) fiber.Handler {
	var (
		mu               sync.Mutex
		lastMetricUpdate time.Time
	)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		utils.RecordRequest(c.Method(), c.Route().Path, c.Response().StatusCode(), duration)

		// 서버 상태 메트릭은 10초마다 한 번씩만 갱신
		mu.Lock()
		due := time.Since(lastMetricUpdate) >= 10*time.Second
		if due {
			lastMetricUpdate = time.Now()
		}
		mu.Unlock()
		if due {
			updateServerMetrics(serverName)
		}

		return err
	}
}

// updateServerMetrics는 서버 상태 메트릭을 Prometheus에 업데이트합니다
func updateServerMetrics(serverName string) {
	m := utils.EvaluateSystem(utils.GetSystemMetrics())

	healthValue := 0.0
	if m.IsHealthy {
		healthValue = 1.0
	}
	utils.UpdateServerMetric(serverName, "load", m.Load)
	utils.UpdateServerMetric(serverName, "healthy", healthValue)
	utils.UpdateServerMetric(serverName, "capacity", m.Capacity)
}
