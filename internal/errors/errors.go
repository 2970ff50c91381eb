package errors

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
)

// ErrorType 定义错误类型
type ErrorType int

const (
	// ErrTypeUnknown 未知错误
	ErrTypeUnknown ErrorType = iota
	// ErrTypeConfig 配置文件读写或解析错误
	ErrTypeConfig
	// ErrTypeExec 外部命令无法启动
	ErrTypeExec
	// ErrTypeInput 标准输入读取错误
	ErrTypeInput
	// ErrTypePublish 发布重试耗尽
	ErrTypePublish
	// ErrTypeUsage 命令行用法错误
	ErrTypeUsage
)

// String returns a short lowercase name for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConfig:
		return "config"
	case ErrTypeExec:
		return "exec"
	case ErrTypeInput:
		return "input"
	case ErrTypePublish:
		return "publish"
	case ErrTypeUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// GtlError 统一错误结构
type GtlError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
}

// Error 实现 error 接口
func (e *GtlError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap 支持 errors.Is 和 errors.As
func (e *GtlError) Unwrap() error {
	return e.Cause
}

// WithSuggestion 添加解决建议
func (e *GtlError) WithSuggestion(suggestion string) *GtlError {
	e.Suggestion = suggestion
	return e
}

// New 创建新的 GtlError
func New(errType ErrorType, message string) *GtlError {
	return &GtlError{
		Type:    errType,
		Message: message,
	}
}

// Wrap 包装已有错误
func Wrap(errType ErrorType, message string, cause error) *GtlError {
	return &GtlError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// ExitError carries the exit code of a pass-through git invocation. It is
// never printed; the top-level handler only adopts the code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ErrUsage is returned when gtl is invoked without arguments.
var ErrUsage = New(ErrTypeUsage, "missing command").WithSuggestion("Usage: gtl help")

// Is 检查是否为特定错误
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As 尝试转换为特定错误类型
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetType 获取错误类型
func GetType(err error) ErrorType {
	var gtlErr *GtlError
	if errors.As(err, &gtlErr) {
		return gtlErr.Type
	}
	return ErrTypeUnknown
}

// GetSuggestion 获取错误建议
func GetSuggestion(err error) string {
	var gtlErr *GtlError
	if errors.As(err, &gtlErr) {
		return gtlErr.Suggestion
	}
	return ""
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// FormatError 格式化错误输出
func FormatError(err error) string {
	var gtlErr *GtlError
	if !errors.As(err, &gtlErr) {
		return color.RedString("Error: %s", err.Error())
	}

	msg := color.RedString("Error: %s", gtlErr.Error())
	if gtlErr.Suggestion != "" {
		msg += "\n" + color.YellowString("%s", gtlErr.Suggestion)
	}
	return msg
}
