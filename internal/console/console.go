package console

import (
	"errors"
	"log"
	"os"
)

// ErrNotTerminal 目标不是交互式控制台 (管道/重定向等)
var ErrNotTerminal = errors.New("not a console")

// Sizer 可调整尺寸的控制台
type Sizer interface {
	// Resize 调整窗口大小 (行, 列)
	Resize(rows, cols int) error
	// Size 当前窗口大小 (行, 列)
	Size() (rows, cols int, err error)
}

// Apply 把宽高应用到宿主控制台
// 调整尺寸只是便利功能, 任何失败都只记录警告, 不中断运行
func Apply(width, height int, logger *log.Logger) {
	s, err := Open(os.Stdout)
	if err != nil {
		logger.Printf("Warning: console not resized to %dx%d: %v", width, height, err)
		return
	}
	ApplyTo(s, width, height, logger)
}

// ApplyTo 同 Apply, 作用于指定的 Sizer
func ApplyTo(s Sizer, width, height int, logger *log.Logger) {
	if err := s.Resize(height, width); err != nil {
		logger.Printf("Warning: console not resized to %dx%d: %v", width, height, err)
	}
}
