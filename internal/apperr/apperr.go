// Package apperr 定义了业务层统一的错误分类。
// 各层只负责抛出带类型的错误，转换为 HTTP 状态码的逻辑集中在 handler 层。
package apperr

import (
	"errors"
	"fmt"
)

// Kind 表示错误的业务类别。
type Kind int

const (
	// KindUnknown 未归类错误，按服务器内部错误处理。
	KindUnknown Kind = iota
	// KindInvalidInput 请求字段缺失、格式校验失败。
	KindInvalidInput
	// KindConflict 唯一键冲突（邮箱、昵称已被占用）。
	KindConflict
	// KindUnauthorized 认证失败（凭证不匹配、token 无效）。
	KindUnauthorized
	// KindNotFound 资源不存在。
	KindNotFound
	// KindUpstream 外部补全服务调用失败。
	KindUpstream
	// KindStorage 数据库操作失败。
	KindStorage
)

// Error 是携带业务类别的错误类型。
// Fields 在输入校验失败时列出所有不合法的字段名。
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Err     error
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap 返回被包装的底层错误。
func (e *Error) Unwrap() error {
	return e.Err
}

// New 创建一个指定类别的错误。
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap 包装一个底层错误并附加业务类别。
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Invalid 创建一个输入校验错误，并记录所有不合法的字段。
func Invalid(message string, fields ...string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Fields: fields}
}

// KindOf 返回错误的业务类别；非 *Error 类型返回 KindUnknown。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// FieldsOf 返回校验错误中记录的字段列表，没有则返回 nil。
func FieldsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
