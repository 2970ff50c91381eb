package main

import (
	"os"

	"github.com/penwyp/gtl/cmd"
	"github.com/penwyp/gtl/internal/errors"
)

// main 为 CLI 入口，调用 cmd.Execute。
func main() {
	// 标准化错误处理：避免 log.Fatalf，由 Handler 打印并给出退出码
	os.Exit(errors.NewHandler(os.Stderr).Handle(cmd.Execute()))
}
