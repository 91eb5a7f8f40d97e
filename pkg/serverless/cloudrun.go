package serverless

import (
	"github.com/sh5080/ndns-comment/pkg/configs"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// CloudRunMain은 컨테이너 환경에서 PORT로 앱을 실행합니다
func CloudRunMain() {
	port := configs.GetConfig().Server.Port
	if err := GetApp().Listen(":" + port); err != nil {
		utils.Fatal("system", "서버 시작 실패: %v", err)
	}
}
