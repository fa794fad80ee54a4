//go:build !windows

package executor

import (
	"os"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// buildCommand 直接构造 exec.Cmd, 不走 exec.Command 以免触发 PATH 查找
// 参数串按空白切分为 argv, 不做引号/转义处理
func buildCommand(s Subject) *exec.Cmd {
	return &exec.Cmd{
		Path: s.Path,
		Args: append([]string{s.Path}, strings.Fields(s.Args)...),
	}
}

// exitStatus 被信号杀死的子进程按 shell 惯例返回 128+signo
func exitStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}

// interruptNeedsForwarding 终端下 Ctrl+C 会发给整个前台进程组 (父子都能收到),
// 只要任一标准流连着终端就不转发, 否则子进程会收到两次
func interruptNeedsForwarding() bool {
	return !anyTerminal(os.Stdin, os.Stdout, os.Stderr)
}

func anyTerminal(files ...*os.File) bool {
	for _, f := range files {
		if f != nil && term.IsTerminal(int(f.Fd())) {
			return true
		}
	}
	return false
}

func forwardInterrupt(p *os.Process) error {
	if p == nil {
		return nil
	}
	err := p.Signal(os.Interrupt)
	if err == os.ErrProcessDone {
		return nil
	}
	return err
}
