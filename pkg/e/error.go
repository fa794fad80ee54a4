package e

import (
	"errors"
	"fmt"

	"console-wrapper/pkg/code"
)

// CodeError 包含错误码的自定义错误
type CodeError struct {
	Code int
	Msg  string
	Raw  error // 原始错误
}

func (e *CodeError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Raw)
	}
	return e.Msg
}

func (e *CodeError) Unwrap() error {
	return e.Raw
}

// New 创建一个新的业务错误, msg 为空时使用错误码的默认信息
func New(c int, msg string, raw error) *CodeError {
	if msg == "" {
		msg = code.GetMsg(c)
	}
	return &CodeError{
		Code: c,
		Msg:  msg,
		Raw:  raw,
	}
}

// CodeOf 提取错误链上的错误码, 非 CodeError 一律视为内部错误
func CodeOf(err error) int {
	if err == nil {
		return code.Success
	}
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return code.ServerError
}

// Is 判断错误链上是否存在指定错误码
func Is(err error, c int) bool {
	var ce *CodeError
	return errors.As(err, &ce) && ce.Code == c
}
