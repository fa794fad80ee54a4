//go:build !windows

package console

import (
	"fmt"
	"math"
	"os"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// TTY 基于终端设备的控制台
type TTY struct {
	f *os.File
}

// Open 打开 f 对应的终端, f 不是终端时返回 ErrNotTerminal
func Open(f *os.File) (*TTY, error) {
	if !term.IsTerminal(int(f.Fd())) {
		return nil, ErrNotTerminal
	}
	return &TTY{f: f}, nil
}

func (t *TTY) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows > math.MaxUint16 || cols > math.MaxUint16 {
		return fmt.Errorf("size %dx%d out of range", cols, rows)
	}

	// 1. 请求终端模拟器调整窗口 (xterm 窗口操作序列, 不支持的终端会忽略)
	fmt.Fprintf(t.f, "\x1b[8;%d;%dt", rows, cols)

	// 2. 设置内核中的窗口尺寸 (TIOCSWINSZ), 子进程据此获取行列数
	return pty.Setsize(t.f, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

func (t *TTY) Size() (int, int, error) {
	ws, err := pty.GetsizeFull(t.f)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Rows), int(ws.Cols), nil
}
