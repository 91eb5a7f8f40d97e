package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors는 모든 유효성 검사 오류를 저장합니다
type ValidationErrors map[string]string

// Add는 ValidationErrors에 새 오류를 추가합니다
func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// HasErrors는 ValidationErrors에 오류가 있는지 확인합니다
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Error는 ValidationErrors를 필드 이름 순으로 정렬된 문자열로 반환합니다
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}

	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(parts, ", ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// 오류 메시지에 구조체 필드 이름 대신 JSON 태그 이름을 사용
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Validate는 구조체의 validate 태그를 검사합니다
func Validate(data interface{}) ValidationErrors {
	result := ValidationErrors{}

	err := getValidator().Struct(data)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.Add("_error", err.Error())
		return result
	}

	for _, fe := range fieldErrs {
		if _, exists := result[fe.Field()]; exists {
			continue // 하나의 필드에 대해 첫 번째 오류만 보고
		}
		result.Add(fe.Field(), describe(fe))
	}
	return result
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목입니다"
	case "min":
		return fmt.Sprintf("최소 %s자 이상이어야 합니다", fe.Param())
	case "max":
		return fmt.Sprintf("최대 %s자 이하여야 합니다", fe.Param())
	case "url", "http_url":
		return "올바른 URL 형식이 아닙니다"
	default:
		return fmt.Sprintf("형식이 올바르지 않습니다: %s", fe.Tag())
	}
}
