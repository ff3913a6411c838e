package response

import "net/http"

type ResponseCode int

// 统一业务代码
const (
	Success ResponseCode = 0
)

// Response 统一响应信封
type Response struct {
	Success bool         `json:"success"`
	Code    ResponseCode `json:"code"`
	Message string       `json:"message"`
	Data    any          `json:"data"`
}

type ResponseOptions func(*Response)

func WithMessage(message string) ResponseOptions {
	return func(r *Response) {
		r.Message = message
	}
}

func WithCode(code ResponseCode) ResponseOptions {
	return func(r *Response) {
		r.Code = code
		r.Success = code == Success
	}
}

func WithData(data any) ResponseOptions {
	return func(r *Response) {
		r.Data = data
	}
}

func CustomResponse(opts ...ResponseOptions) Response {
	response := Response{Success: true, Message: "success"}
	for _, opt := range opts {
		opt(&response)
	}
	return response
}

func SuccessResponse(data any) Response {
	return Response{
		Success: true,
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Success: false,
		Message: msg,
		Code:    code,
		Data:    nil,
	}
}

// HTTPStatus 业务码对应的 HTTP 状态码
// 业务码前三位即 HTTP 状态码，例如 40401 -> 404
func (c ResponseCode) HTTPStatus() int {
	if c == Success {
		return http.StatusOK
	}
	status := int(c) / 100
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
