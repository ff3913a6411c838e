package dto

import (
	"errors"
	"fmt"
	"strings"

	res "terminal-terrace/mp-article/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(res.Success.HTTPStatus(), res.SuccessResponse(data))
}

// ErrorResponse HTTP 状态码由业务码推导
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(err.Code.HTTPStatus(), res.ErrorResponse(err.Code, err.Msg))
}

// AbortWithError 中间件中使用，写入错误后终止后续处理
func AbortWithError(c *gin.Context, err *res.BusinessError) {
	c.AbortWithStatusJSON(err.Code.HTTPStatus(), res.ErrorResponse(err.Code, err.Msg))
}

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		firstErr := validationErrs[0]
		field := toSnakeCase(firstErr.Field())

		var message string
		switch firstErr.Tag() {
		case "required":
			message = fmt.Sprintf("字段 '%s' 是必填项", field)
		case "max", "lte":
			message = fmt.Sprintf("字段 '%s' 不能大于 %s", field, firstErr.Param())
		case "min", "gte":
			message = fmt.Sprintf("字段 '%s' 不能小于 %s", field, firstErr.Param())
		case "oneof":
			message = fmt.Sprintf("字段 '%s' 必须是以下值之一: %s", field, firstErr.Param())
		default:
			message = fmt.Sprintf("字段 '%s' 验证失败: %s", field, firstErr.Tag())
		}

		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.InvalidParameter),
			res.WithErrorMessage(message),
		))
		return
	}

	// 类型转换失败等非 validation 错误
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.InvalidParameter),
		res.WithErrorMessage("参数错误: "+err.Error()),
	))
}

// toSnakeCase 将PascalCase转换为snake_case
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}

// HandleError 服务层返回的错误统一转换为业务错误响应
func HandleError(c *gin.Context, err error) {
	var bizErr *res.BusinessError
	if !errors.As(err, &bizErr) {
		bizErr = res.NewBusinessError(
			res.WithErrorCode(res.Fail),
			res.WithErrorMessage("服务内部错误"),
			res.WithError(err),
		)
	}
	ErrorResponse(c, bizErr)
}

// SuccessWithMessage 自定义提示信息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data any) {
	c.JSON(res.Success.HTTPStatus(), res.CustomResponse(
		res.WithCode(res.Success),
		res.WithMessage(message),
		res.WithData(data),
	))
}
