package route

import (
	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
)

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App, container *_interface.ServiceContainer, serverless bool) {
	SetupAppRoutes(app, container, serverless)

	// API 라우트 그룹
	api := app.Group("/api")
	SetupCommentRoutes(api, container)
}
