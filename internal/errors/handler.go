package errors

import (
	"fmt"
	"io"
)

// Handler 顶层错误处理器，决定诊断输出与退出码
type Handler struct {
	out io.Writer
}

// NewHandler 创建写入 out（通常为 stderr）的错误处理器
func NewHandler(out io.Writer) *Handler {
	return &Handler{out: out}
}

// Handle prints the diagnostic for err and returns the process exit code.
// Pass-through exit codes are adopted silently; usage errors print only the
// usage line.
func (h *Handler) Handle(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}

	if GetType(err) == ErrTypeUsage {
		if s := GetSuggestion(err); s != "" {
			_, _ = fmt.Fprintln(h.out, s)
		} else {
			_, _ = fmt.Fprintln(h.out, err.Error())
		}
		return 1
	}

	_, _ = fmt.Fprintln(h.out, FormatError(err))
	return ExitCode(err)
}
