package executor

import (
	"os"
	"os/signal"
	"sync"
)

// Suppressor 接管父进程的中断信号, 使 Ctrl+C 不会直接结束父进程,
// 父进程的生命周期由子进程决定
type Suppressor struct {
	sigs    chan os.Signal
	forward bool
	once    sync.Once
}

// SuppressInterrupts 必须在启动子进程之前调用
// forward 为 true 时由调用方把收到的中断转发给子进程
func SuppressInterrupts(forward bool) *Suppressor {
	s := &Suppressor{
		sigs:    make(chan os.Signal, 1),
		forward: forward,
	}
	signal.Notify(s.sigs, os.Interrupt)
	return s
}

// C 收到的中断信号
func (s *Suppressor) C() <-chan os.Signal {
	return s.sigs
}

// Forward 是否需要手动转发给子进程
func (s *Suppressor) Forward() bool {
	return s.forward
}

// Stop 恢复默认的信号处理, 可重复调用
func (s *Suppressor) Stop() {
	s.once.Do(func() {
		signal.Stop(s.sigs)
	})
}
