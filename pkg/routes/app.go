package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/ndns-comment/pkg/controllers"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
)

// SetupAppRoutes는 애플리케이션 관련 라우트를 설정합니다.
// serverless가 true이면 /metrics를 등록하지 않습니다.
func SetupAppRoutes(app *fiber.App, container *_interface.ServiceContainer, serverless bool) {
	// 상태 확인 API
	app.Get("/health", controller.Health(container.Config))
	app.Get("/status", controller.Status(container.StatusService))

	// 메트릭 API
	if !serverless {
		app.Get("/metrics", controller.Metrics())
	}
}
