package serverless

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/ndns-comment/pkg/app"
	"github.com/sh5080/ndns-comment/pkg/configs"
)

var (
	fiberApp *fiber.App
	appOnce  sync.Once
)

// GetApp 함수는 서버리스 환경용 애플리케이션 인스턴스를 반환합니다.
// 서버리스 환경에서는 전역 변수로 앱 인스턴스를 유지하여 콜드 스타트를 최소화합니다.
func GetApp() *fiber.App {
	appOnce.Do(func() {
		fiberApp = app.New(configs.GetConfig(), true)
	})
	return fiberApp
}
