package executor

import (
	"os"
	"os/exec"
	"syscall"
)

// buildCommand Windows 下参数串原样拼进命令行, 由子进程自己解析
func buildCommand(s Subject) *exec.Cmd {
	cmdLine := syscall.EscapeArg(s.Path)
	if s.Args != "" {
		cmdLine += " " + s.Args
	}
	return &exec.Cmd{
		Path: s.Path,
		Args: []string{s.Path},
		SysProcAttr: &syscall.SysProcAttr{
			CmdLine: cmdLine,
		},
	}
}

func exitStatus(state *os.ProcessState) int {
	return state.ExitCode()
}

// interruptNeedsForwarding 控制台的 Ctrl+C 事件会广播给所有附着在该控制台上的进程
func interruptNeedsForwarding() bool {
	return false
}

// forwardInterrupt 子进程与父进程同属一个控制台, 不需要也无法单独投递
func forwardInterrupt(p *os.Process) error {
	return nil
}
