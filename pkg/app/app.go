package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sh5080/ndns-comment/pkg/configs"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	middleware "github.com/sh5080/ndns-comment/pkg/middlewares"
	route "github.com/sh5080/ndns-comment/pkg/routes"
	service "github.com/sh5080/ndns-comment/pkg/services"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// New는 설정으로 서비스 컨테이너를 만들고 Fiber 앱을 생성합니다.
// 로그 파일을 열 수 없으면 파일 기록 없이 동작합니다.
func New(config *configs.EnvConfig, serverless bool) *fiber.App {
	sink, err := utils.NewLogSink(config.Server.LogFile)
	if err != nil {
		utils.Warn("system", "로그 파일을 사용할 수 없습니다: %v", err)
		sink = nil
	} else {
		utils.AttachSink(sink)
	}

	return NewWithContainer(service.NewServiceContainer(config, sink), serverless)
}

// NewWithContainer는 미들웨어와 라우트가 설정된 Fiber 앱을 생성합니다
func NewWithContainer(container *_interface.ServiceContainer, serverless bool) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName:               container.Config.Server.AppName,
		DisableStartupMessage: serverless,
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(cors.New())
	if !serverless {
		// 온프레미스 환경에서만 Prometheus 메트릭 수집
		fiberApp.Use(middleware.Prometheus(container.Config.Server.AppName))
	}

	route.SetupRoutes(fiberApp, container, serverless)
	return fiberApp
}
