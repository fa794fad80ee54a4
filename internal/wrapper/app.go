package wrapper

import (
	"fmt"
	"io"
	"log"

	"console-wrapper/internal/console"
	"console-wrapper/internal/executor"
	"console-wrapper/pkg/code"
	"console-wrapper/pkg/config"
	"console-wrapper/pkg/e"
)

// Launcher 启动并监管子进程
type Launcher interface {
	Run(subject executor.Subject) (int, error)
}

// App 一次 wrapper 运行: 解析参数 -> 解析 subject -> 调整控制台 -> 监管子进程
type App struct {
	Name   string
	Stdout io.Writer
	Stderr io.Writer

	Resolve     func(subject string) (executor.Subject, error)
	SizeConsole func(width, height int, logger *log.Logger)
	NewLauncher func(stdout, stderr io.Writer, logger *log.Logger) Launcher
}

// New 使用真实的解析器, 控制台和进程监管器
func New(name string, stdout, stderr io.Writer) *App {
	return &App{
		Name:        name,
		Stdout:      stdout,
		Stderr:      stderr,
		Resolve:     executor.Resolve,
		SizeConsole: console.Apply,
		NewLauncher: func(stdout, stderr io.Writer, logger *log.Logger) Launcher {
			return executor.NewSupervisor(stdout, stderr, logger)
		},
	}
}

// Run 执行并返回进程退出码
func (a *App) Run(args []string) int {
	parser := config.NewParser(a.Name)

	// 1. 语法错误优先
	inv, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(a.Stderr, "%s: %v\n", a.Name, err)
		fmt.Fprintln(a.Stderr, parser.Hint())
		return e.CodeOf(err)
	}

	// 2. 帮助
	if inv.Help {
		fmt.Fprint(a.Stdout, parser.Usage())
		return code.Success
	}

	// 3. --subject 与位置参数不能同时出现
	if len(inv.Extra) > 0 {
		fmt.Fprintf(a.Stderr, "%s: Unexpected parameters:\n", a.Name)
		for _, token := range inv.Extra {
			fmt.Fprintf(a.Stderr, "  %s\n", token)
		}
		return code.ParseError
	}

	opts := inv.Options
	if opts.Subject == "" {
		return a.fail(e.New(code.MissingSubject, "", nil))
	}

	logger := log.New(io.Discard, "", 0)
	if opts.Verbose {
		logger = log.New(a.Stderr, "["+a.Name+"] ", log.LstdFlags)
	}

	// 4. 拆分可执行文件和参数
	subject, err := a.Resolve(opts.Subject)
	if err != nil {
		return a.fail(err)
	}
	logger.Printf("Resolved subject: path=%q args=%q", subject.Path, subject.Args)

	// 5. 调整控制台尺寸, 失败不影响运行
	width, height := opts.Dimensions()
	a.SizeConsole(width, height, logger)

	// 6. 启动并等待子进程
	status, err := a.NewLauncher(a.Stdout, a.Stderr, logger).Run(subject)
	if err != nil {
		return a.fail(err)
	}

	// 默认不传递子进程退出码
	if opts.PropagateExitCode {
		return status
	}
	return code.Success
}

func (a *App) fail(err error) int {
	fmt.Fprintf(a.Stderr, "%s: %v\n", a.Name, err)
	return e.CodeOf(err)
}
