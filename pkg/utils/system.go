package utils

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemMetrics는 호스트 자원 사용률과 이를 바탕으로 계산한 상태입니다
type SystemMetrics struct {
	CpuUsage    float64 `json:"cpuUsage"`
	MemoryUsage float64 `json:"memoryUsage"`
	Load        float64 `json:"load"`
	Capacity    float64 `json:"capacity"`
	IsHealthy   bool    `json:"isHealthy"`
}

// GetSystemMetrics는 CPU와 메모리 사용률(0-1)을 반환합니다. 측정 실패 시 0을 반환합니다.
func GetSystemMetrics() (float64, float64) {
	var cpuUsage, memoryUsage float64

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100.0
	} else if err != nil {
		Debug("system", "CPU 사용률 측정 실패: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		memoryUsage = vm.UsedPercent / 100.0
	} else {
		Debug("system", "메모리 사용률 측정 실패: %v", err)
	}

	return cpuUsage, memoryUsage
}

// EvaluateSystem은 사용률로부터 부하, 용량, 건강 상태를 계산합니다
func EvaluateSystem(cpuUsage, memoryUsage float64) SystemMetrics {
	// 서버 부하 계산 - CPU와 메모리 사용률의 가중 평균
	load := (cpuUsage * 0.7) + (memoryUsage * 0.3)

	capacity := 1.0 - load
	if capacity < 0 {
		capacity = 0
	}

	return SystemMetrics{
		CpuUsage:    cpuUsage,
		MemoryUsage: memoryUsage,
		Load:        load,
		Capacity:    capacity,
		IsHealthy:   cpuUsage <= 0.9 && memoryUsage <= 0.95,
	}
}
