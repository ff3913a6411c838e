package config

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"
)

// swagVersion 与 go.mod 中的 github.com/swaggo/swag 保持一致
const swagVersion = "v1.16.6"

// SwaggerOptions swag init 的入口文件和输出目录
type SwaggerOptions struct {
	Entry   string
	Output  string
	Timeout time.Duration
}

// DefaultSwaggerOptions 文章服务的入口和 docs 目录
func DefaultSwaggerOptions() SwaggerOptions {
	return SwaggerOptions{
		Entry:   "cmd/server/main.go",
		Output:  "docs",
		Timeout: 2 * time.Minute,
	}
}

func (o SwaggerOptions) args() []string {
	return []string{
		"run",
		"github.com/swaggo/swag/cmd/swag@" + swagVersion,
		"init",
		"-g", o.Entry,
		"-o", o.Output,
		"--outputTypes", "go",
		"--parseInternal",
	}
}

// GenerateSwagger 重新生成 docs/docs.go，需在模块根目录执行
func GenerateSwagger(opts SwaggerOptions) error {
	if _, err := os.Stat(opts.Entry); err != nil {
		return fmt.Errorf("找不到 swagger 入口文件 %s: %w", opts.Entry, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	log.Printf("[Swagger] 生成文档 %s -> %s", opts.Entry, opts.Output)
	cmd := exec.CommandContext(ctx, "go", opts.args()...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("swag init 失败: %w; stdout: %s; stderr: %s", err, strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()))
	}

	log.Printf("[Swagger] 文档已更新: %s/docs.go", opts.Output)
	return nil
}

// InitProgram 通过命令行参数 -init-swagger 触发，生成文档后退出
func InitProgram() {
	if err := GenerateSwagger(DefaultSwaggerOptions()); err != nil {
		log.Fatalf("[Swagger] %v", err)
	}
}
