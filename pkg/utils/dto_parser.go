package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseAndValidate는 요청 본문을 DTO로 변환하고 검증합니다.
// dto: 변환될 DTO 구조체 포인터
// 반환값: 에러가 있으면 fiber.Error, 성공 시 nil 반환
func ParseAndValidate(c *fiber.Ctx, dto interface{}) error {
	if err := c.BodyParser(dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "요청 본문 파싱 실패: "+err.Error())
	}

	trimStrings(dto)

	if errs := Validate(dto); errs.HasErrors() {
		Debug("validator", "유효성 검증 실패: %s", errs.Error())
		return fiber.NewError(fiber.StatusBadRequest, errs.Error())
	}
	return nil
}

// Trimmer는 검증 전에 입력값의 앞뒤 공백을 정리하는 DTO입니다
type Trimmer interface {
	Trim()
}

func trimStrings(dto interface{}) {
	if t, ok := dto.(Trimmer); ok {
		t.Trim()
	}
}

// TrimAll은 문자열 포인터들의 앞뒤 공백을 제거합니다
func TrimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
