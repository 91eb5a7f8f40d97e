package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/ndns-comment/pkg/configs"
	_interface "github.com/sh5080/ndns-comment/pkg/interfaces"
	"github.com/sh5080/ndns-comment/pkg/types"
	requestDto "github.com/sh5080/ndns-comment/pkg/types/dtos/requests"
	responseDto "github.com/sh5080/ndns-comment/pkg/types/dtos/responses"
	model "github.com/sh5080/ndns-comment/pkg/types/models"
	"github.com/sh5080/ndns-comment/pkg/utils"
)

// CreateComment는 블로그 본문을 읽고 댓글을 생성하는 핸들러입니다
func CreateComment(agent _interface.CommentAgent, config *configs.EnvConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.CreateComment
		if err := utils.ParseAndValidate(c, &req); err != nil {
			return err
		}

		if req.APIKey == "" {
			req.APIKey = config.APIKey()
		}
		if req.Model == "" {
			req.Model = config.LLM.DefaultModel
		}
		if strings.TrimSpace(req.URL) == "" || req.APIKey == "" {
			return c.Status(fiber.StatusBadRequest).JSON(responseDto.Error{Error: types.MsgMissingInput})
		}
		if !config.IsSupportedModel(req.Model) {
			return c.Status(fiber.StatusBadRequest).JSON(responseDto.Error{
				Error: "지원하지 않는 모델입니다: " + req.Model,
			})
		}

		ctx, cancel := context.WithCancel(c.UserContext())
		defer cancel()

		var outcome model.RunOutcome
		select {
		case outcome = <-agent.RunAsync(ctx, req):
		case <-ctx.Done():
			// 클라이언트가 먼저 끊으면 파이프라인도 같은 컨텍스트로 중단됨
			outcome.Err = fmt.Errorf("요청이 취소되었습니다: %w", ctx.Err())
		}

		if outcome.Err != nil {
			return c.Status(statusFor(outcome.Err)).JSON(responseDto.Error{
				Error: outcome.Err.Error(),
				Kind:  string(types.KindOf(outcome.Err)),
			})
		}

		return c.JSON(responseDto.Comment{Current: *outcome.Entry})
	}
}

// History는 최신 결과와 이전 기록을 반환합니다
func History(agent _interface.CommentAgent) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(agent.Snapshot())
	}
}

// ClearHistory는 기록, 최신 결과, 로그 파일을 모두 비웁니다
func ClearHistory(agent _interface.CommentAgent) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := agent.ClearAll(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responseDto.Error{
				Error: "기록 삭제 중 오류 발생: " + err.Error(),
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Models는 선택 가능한 모델 목록을 반환합니다
func Models(config *configs.EnvConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(responseDto.Models{
			Provider: config.LLM.Provider,
			Default:  config.LLM.DefaultModel,
			Models:   config.LLM.SupportedModels,
		})
	}
}

func statusFor(err error) int {
	switch types.KindOf(err) {
	case types.KindNotFound, types.KindParse:
		return fiber.StatusUnprocessableEntity
	case types.KindNetwork, types.KindGeneration:
		return fiber.StatusBadGateway
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fiber.StatusRequestTimeout
	}
	return fiber.StatusInternalServerError
}
