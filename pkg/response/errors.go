package response

// 业务错误码
const (
	// 参数错误
	InvalidParameter ResponseCode = 40001
	// 未登录或令牌无效
	Unauthorized ResponseCode = 40101
	// 文章不存在
	NotFound ResponseCode = 40401
	// 没有下一篇文章
	NoNextArticle ResponseCode = 40402
	// 没有上一篇文章
	NoPrevArticle ResponseCode = 40403
	// 活动信息不存在
	EventNotFound ResponseCode = 40404
	// 服务内部错误
	Fail ResponseCode = 50001
)

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}
