package service

import (
	client "github.com/sh5080/ndns-comment/pkg/clients"
	"github.com/sh5080/ndns-comment/pkg/configs"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	"github.com/sh5080/ndns-comment/pkg/services/internal/crawler"
	"github.com/sh5080/ndns-comment/pkg/services/internal/generator"
	"github.com/sh5080/ndns-comment/pkg/services/internal/session"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다
func NewServiceContainer(config *configs.EnvConfig, sink *utils.LogSink) *_interface.ServiceContainer {
	return NewServiceContainerWith(config, client.NewLLMClient(config), sink)
}

// NewServiceContainerWith는 LLM 클라이언트를 직접 지정해 컨테이너를 생성합니다
func NewServiceContainerWith(config *configs.EnvConfig, llm _interface.LLMClient, sink *utils.LogSink) *_interface.ServiceContainer {
	extractor := crawler.NewBlogExtractor(config)
	commentGenerator := generator.NewCommentGenerator(llm)
	agent := NewCommentAgent(extractor, commentGenerator, session.New(), sink)
	statusService := NewServerStatusService(config, agent)

	return &_interface.ServiceContainer{
		Config:        config,
		Extractor:     extractor,
		Generator:     commentGenerator,
		Agent:         agent,
		StatusService: statusService,
	}
}
