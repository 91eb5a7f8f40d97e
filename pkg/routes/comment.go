package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/ndns-comment/pkg/controllers"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
)

// SetupCommentRoutes는 댓글 생성과 기록 관련 라우트를 설정합니다
func SetupCommentRoutes(api fiber.Router, container *_interface.ServiceContainer) {
	api.Get("/models", controller.Models(container.Config))
	api.Post("/comments", controller.CreateComment(container.Agent, container.Config))

	api.Get("/history", controller.History(container.Agent))
	api.Delete("/history", controller.ClearHistory(container.Agent))
}
