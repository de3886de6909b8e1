package response

import "fmt"

// AppError 业务错误，Code 为业务状态码而非 HTTP 状态码
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewError 构造业务错误，err 可为 nil
func NewError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
