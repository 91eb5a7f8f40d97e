package controller

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sh5080/ndns-comment/pkg/configs"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	responseDto "github.com/sh5080/ndns-comment/pkg/types/dtos/responses"
)

var GoVersion = runtime.Version()
var startTime = time.Now()

func Health(config *configs.EnvConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		response := responseDto.HealthResponse{
			Status:    "ok",
			AppName:   config.Server.AppName,
			Time:      time.Now(),
			Version:   configs.AppVersion,
			Uptime:    time.Since(startTime).String(),
			GoVersion: GoVersion,
		}
		return c.JSON(response)
	}
}

// Metrics는 프로메테우스 메트릭을 제공하는 핸들러입니다
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// Status는 호스트 자원 사용률과 세션 요약을 반환합니다
func Status(statusService _interface.ServerStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(statusService.GetServerStatus())
	}
}
