//go:build !windows

package executor_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"console-wrapper/internal/executor"
	"console-wrapper/pkg/code"
	"console-wrapper/pkg/e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer 允许转发协程写入的同时在测试中读取
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

// writeScript 生成一个可执行的 sh 脚本
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subject.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestRunRelaysStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	s := executor.NewSupervisor(&out, &errOut, nil)

	status, err := s.Run(executor.Subject{Path: "/bin/echo", Args: "hello world"})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "hello world\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunSeparatesStreams(t *testing.T) {
	script := writeScript(t, `
echo out-1
echo err-1 >&2
echo out-2
echo err-2 >&2
printf "tail"`)

	var out, errOut bytes.Buffer
	status, err := executor.NewSupervisor(&out, &errOut, nil).Run(executor.Subject{Path: script})
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "out-1\nout-2\ntail\n", out.String())
	assert.Equal(t, "err-1\nerr-2\n", errOut.String())
}

// stderr 先写满管道缓冲区, 两个流必须并发读取才不会互相阻塞
func TestRunReadsStreamsConcurrently(t *testing.T) {
	script := writeScript(t, `
head -c 1048576 /dev/zero | tr '\0' x >&2
echo done`)

	var out, errOut bytes.Buffer
	done := make(chan runResult, 1)
	go func() {
		status, err := executor.NewSupervisor(&out, &errOut, nil).Run(executor.Subject{Path: script})
		done <- runResult{status, err}
	}()

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, 0, r.status)
		assert.Equal(t, "done\n", out.String())
		assert.Equal(t, strings.Repeat("x", 1048576)+"\n", errOut.String())
	case <-time.After(10 * time.Second):
		t.Fatal("subject blocked on a full stderr pipe")
	}
}

func TestRunPassesArguments(t *testing.T) {
	script := writeScript(t, `for a in "$@"; do echo "[$a]"; done`)

	var out bytes.Buffer
	_, err := executor.NewSupervisor(&out, &bytes.Buffer{}, nil).Run(executor.Subject{Path: script, Args: "one  two three"})
	require.NoError(t, err)
	assert.Equal(t, "[one]\n[two]\n[three]\n", out.String())
}

func TestRunExitCodes(t *testing.T) {
	cases := map[string]struct {
		body string
		want int
	}{
		"exit":   {"exit 7", 7},
		"signal": {"kill -TERM $$", 128 + int(syscall.SIGTERM)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			script := writeScript(t, tc.body)
			status, err := executor.NewSupervisor(&bytes.Buffer{}, &bytes.Buffer{}, nil).Run(executor.Subject{Path: script})
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
		})
	}
}

func TestRunLaunchErrors(t *testing.T) {
	dir := t.TempDir()
	notExec := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(notExec, []byte("plain"), 0644))

	cases := map[string]string{
		"missing":        filepath.Join(dir, "missing"),
		"not executable": notExec,
		"no path lookup": "echo",
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := executor.NewSupervisor(&out, &bytes.Buffer{}, nil).Run(executor.Subject{Path: path, Args: "x"})
			require.Error(t, err)
			assert.True(t, e.Is(err, code.LaunchFailed))
			assert.Empty(t, out.String())
		})
	}
}

type runResult struct {
	status int
	err    error
}

func TestRunForwardsInterrupt(t *testing.T) {
	script := writeScript(t, `
trap 'echo caught; exit 3' INT
echo ready
while :; do sleep 0.1; done`)

	out := &syncBuffer{}
	s := executor.NewSupervisor(out, &syncBuffer{}, nil)
	s.ForwardInterrupts = true

	done := make(chan runResult, 1)
	go func() {
		status, err := s.Run(executor.Subject{Path: script})
		done <- runResult{status, err}
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "ready")
	}, 5*time.Second, 20*time.Millisecond)

	// 给自己发 SIGINT: 测试进程必须存活, 信号转交给子进程
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, 3, r.status)
		assert.Equal(t, "ready\ncaught\n", out.String())
	case <-time.After(10 * time.Second):
		t.Fatal("subject did not exit after interrupt")
	}
}

func TestRunSuppressesInterrupt(t *testing.T) {
	script := writeScript(t, `
echo ready
sleep 1
echo finished`)

	out := &syncBuffer{}
	s := executor.NewSupervisor(out, &syncBuffer{}, nil)
	s.ForwardInterrupts = false

	done := make(chan runResult, 1)
	go func() {
		status, err := s.Run(executor.Subject{Path: script})
		done <- runResult{status, err}
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "ready")
	}, 5*time.Second, 20*time.Millisecond)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, 0, r.status)
		assert.Equal(t, "ready\nfinished\n", out.String())
	case <-time.After(10 * time.Second):
		t.Fatal("subject did not exit")
	}
}
