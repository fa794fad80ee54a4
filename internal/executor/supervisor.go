package executor

import (
	"errors"
	"io"
	"log"
	"os/exec"
	"sync"

	"console-wrapper/pkg/code"
	"console-wrapper/pkg/e"
)

// Supervisor 启动子进程, 转发其 stdout/stderr, 并阻塞到子进程退出
type Supervisor struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger

	// ForwardInterrupts 收到中断时是否手动转发给子进程
	ForwardInterrupts bool
}

// NewSupervisor 按当前平台的默认策略创建 Supervisor
func NewSupervisor(stdout, stderr io.Writer, logger *log.Logger) *Supervisor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Supervisor{
		Stdout:            stdout,
		Stderr:            stderr,
		Logger:            logger,
		ForwardInterrupts: interruptNeedsForwarding(),
	}
}

// Run 启动子进程并等待其退出, 返回子进程退出码
// 启动失败返回 code.LaunchFailed
func (s *Supervisor) Run(subject Subject) (int, error) {
	cmd := buildCommand(subject)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, e.New(code.LaunchFailed, "", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, e.New(code.LaunchFailed, "", err)
	}

	// 1. 先接管中断信号, 再启动子进程
	sup := SuppressInterrupts(s.ForwardInterrupts)
	defer sup.Stop()

	// 2. 启动
	if err := cmd.Start(); err != nil {
		return -1, e.New(code.LaunchFailed, "", err)
	}
	s.Logger.Printf("Started %q (pid %d)", subject.String(), cmd.Process.Pid)

	// 3. 两个流各自一个转发协程, 必须在 Wait 之前启动
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := relay(stdout, s.Stdout); err != nil {
			s.Logger.Printf("Relay stdout failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := relay(stderr, s.Stderr); err != nil {
			s.Logger.Printf("Relay stderr failed: %v", err)
		}
	}()

	// Wait 会关闭管道, 需等转发读完再调用
	waitCh := make(chan error, 1)
	go func() {
		wg.Wait()
		waitCh <- cmd.Wait()
	}()

	// 4. 阻塞到子进程退出, 期间吞掉父进程收到的中断
	for {
		select {
		case sig := <-sup.C():
			s.Logger.Printf("Received %v, waiting for pid %d to exit", sig, cmd.Process.Pid)
			if sup.Forward() {
				if err := forwardInterrupt(cmd.Process); err != nil {
					s.Logger.Printf("Forward %v to pid %d failed: %v", sig, cmd.Process.Pid, err)
				}
			}
		case err := <-waitCh:
			var exitErr *exec.ExitError
			if err != nil && !errors.As(err, &exitErr) {
				return -1, e.New(code.ServerError, "wait for subject failed", err)
			}
			status := exitStatus(cmd.ProcessState)
			s.Logger.Printf("Pid %d exited with code %d", cmd.Process.Pid, status)
			return status, nil
		}
	}
}
