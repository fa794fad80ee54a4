//go:build !windows

package wrapper_test

import (
	"bytes"
	"log"
	"testing"

	"console-wrapper/internal/wrapper"
	"console-wrapper/pkg/code"

	"github.com/stretchr/testify/assert"
)

// 真实启动 /bin/echo, 控制台尺寸调整替换为空操作以免影响运行测试的终端
func runEcho(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := wrapper.New("wrapper", &stdout, &stderr)
	app.SizeConsole = func(int, int, *log.Logger) {}
	status := app.Run(args)
	return status, stdout.String(), stderr.String()
}

func TestEndToEndExplicitSubject(t *testing.T) {
	status, out, errOut := runEcho(t, "--width=180", "--height=40", "--subject=/bin/echo hello world")
	assert.Equal(t, code.Success, status)
	assert.Equal(t, "hello world\n", out)
	assert.Empty(t, errOut)
}

func TestEndToEndPositionalSubject(t *testing.T) {
	status, out, errOut := runEcho(t, "--width=180", "--height=40", "/bin/echo", "hello")
	assert.Equal(t, code.Success, status)
	assert.Equal(t, "hello\n", out)
	assert.Empty(t, errOut)
}

func TestEndToEndExitCode(t *testing.T) {
	status, _, _ := runEcho(t, "/bin/sh", "-c", "exit")
	assert.Equal(t, code.Success, status)

	// /bin/false 退出码为 1, 仅在开启传递时生效
	status, _, _ = runEcho(t, "--propagate-exit-code", "/bin/false")
	assert.Equal(t, 1, status)
}
