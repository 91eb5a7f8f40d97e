package main

import (
	"github.com/sh5080/ndns-comment/pkg/app"
	"github.com/sh5080/ndns-comment/pkg/configs"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

func main() {
	// 메트릭 초기화
	utils.InitMetrics()

	config := configs.GetConfig()
	server := app.New(config, false)

	utils.Info("system", "%s 시작 (provider=%s, 로그 파일=%s)", config.Server.AppName, config.LLM.Provider, config.Server.LogFile)
	if err := server.Listen(":" + config.Server.Port); err != nil {
		utils.Fatal("system", "서버 시작 실패: %v", err)
	}
}
