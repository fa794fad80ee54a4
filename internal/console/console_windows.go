package console

import (
	"fmt"
	"math"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                       = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleScreenBufferSize = kernel32.NewProc("SetConsoleScreenBufferSize")
	procSetConsoleWindowInfo       = kernel32.NewProc("SetConsoleWindowInfo")
)

// Console Windows 控制台屏幕缓冲区
type Console struct {
	h windows.Handle
}

// Open 打开 f 对应的控制台, f 被重定向时返回 ErrNotTerminal
func Open(f *os.File) (*Console, error) {
	h := windows.Handle(f.Fd())
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTerminal, err)
	}
	return &Console{h: h}, nil
}

func (c *Console) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt16 || cols > math.MaxInt16 {
		return fmt.Errorf("size %dx%d out of range", cols, rows)
	}

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.h, &info); err != nil {
		return err
	}

	// 1. 窗口不能大于缓冲区: 先把窗口缩到新旧尺寸的较小值
	curCols := int(info.Window.Right-info.Window.Left) + 1
	curRows := int(info.Window.Bottom-info.Window.Top) + 1
	shrink := windows.SmallRect{
		Right:  int16(min(cols, curCols) - 1),
		Bottom: int16(min(rows, curRows) - 1),
	}
	if err := setWindowInfo(c.h, &shrink); err != nil {
		return fmt.Errorf("shrink window failed: %v", err)
	}

	// 2. 调整缓冲区
	if err := setScreenBufferSize(c.h, windows.Coord{X: int16(cols), Y: int16(rows)}); err != nil {
		return fmt.Errorf("set buffer size failed: %v", err)
	}

	// 3. 窗口撑满缓冲区
	full := windows.SmallRect{
		Right:  int16(cols - 1),
		Bottom: int16(rows - 1),
	}
	if err := setWindowInfo(c.h, &full); err != nil {
		return fmt.Errorf("set window size failed: %v", err)
	}
	return nil
}

func (c *Console) Size() (int, int, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.h, &info); err != nil {
		return 0, 0, err
	}
	rows := int(info.Window.Bottom-info.Window.Top) + 1
	cols := int(info.Window.Right-info.Window.Left) + 1
	return rows, cols, nil
}

func setScreenBufferSize(h windows.Handle, size windows.Coord) error {
	// COORD 按值传递, 打包为 32 位
	packed := uintptr(uint16(size.X)) | uintptr(uint16(size.Y))<<16
	r, _, err := procSetConsoleScreenBufferSize.Call(uintptr(h), packed)
	if r == 0 {
		return err
	}
	return nil
}

func setWindowInfo(h windows.Handle, rect *windows.SmallRect) error {
	r, _, err := procSetConsoleWindowInfo.Call(uintptr(h), 1, uintptr(unsafe.Pointer(rect)))
	if r == 0 {
		return err
	}
	return nil
}
