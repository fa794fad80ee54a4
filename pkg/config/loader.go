package config

import (
	"fmt"
	"io"
	"strings"

	"console-wrapper/pkg/code"
	"console-wrapper/pkg/e"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Parser 命令行解析器, 每个实例独立持有 FlagSet 和 Viper, 不依赖全局状态
type Parser struct {
	name  string
	flags *pflag.FlagSet
	v     *viper.Viper
}

// NewParser 创建解析器, name 用于错误提示和帮助文本
func NewParser(name string) *Parser {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	// 遇到第一个位置参数即停止, 之后的 token 全部属于 subject
	fs.SetInterspersed(false)

	fs.String("subject", "", "Executable (+ optional arguments) to launch.")
	fs.Int("width", DefaultWidth, "Console width in columns (non-positive -> default).")
	fs.Int("height", DefaultHeight, "Console height in rows (non-positive -> default).")
	fs.Bool("propagate-exit-code", false, "Exit with the exit code of the subject.")
	fs.BoolP("verbose", "v", false, "Log launch details to standard error.")
	fs.BoolP("help", "h", false, "Show this message and exit (also -?).")
	fs.BoolP("help-alt", "?", false, "Show this message and exit.")
	fs.MarkHidden("help-alt")

	v := viper.New()
	v.BindPFlag("subject", fs.Lookup("subject"))
	v.BindPFlag("width", fs.Lookup("width"))
	v.BindPFlag("height", fs.Lookup("height"))
	v.BindPFlag("verbose", fs.Lookup("verbose"))
	v.BindPFlag("propagate_exit_code", fs.Lookup("propagate-exit-code"))

	// 兜底默认值
	v.SetDefault("width", DefaultWidth)
	v.SetDefault("height", DefaultHeight)

	return &Parser{name: name, flags: fs, v: v}
}

// Parse 解析命令行 (不含程序名)
func (p *Parser) Parse(args []string) (*Invocation, error) {
	if err := p.flags.Parse(args); err != nil {
		return nil, e.New(code.ParseError, err.Error(), nil)
	}

	var opts Options
	if err := p.v.Unmarshal(&opts); err != nil {
		return nil, e.New(code.ParseError, "", err)
	}

	inv := &Invocation{
		Options:    opts,
		SubjectSet: p.flags.Changed("subject"),
	}
	inv.Help, _ = p.flags.GetBool("help")
	if alt, _ := p.flags.GetBool("help-alt"); alt {
		inv.Help = true
	}

	// 1. 显式 --subject 时, 多余的位置参数全部视为非法
	// 2. 否则位置参数以单个空格拼接成 subject
	positional := p.flags.Args()
	if inv.SubjectSet {
		inv.Extra = positional
	} else {
		inv.Options.Subject = strings.Join(positional, " ")
	}
	return inv, nil
}

// Usage 返回帮助文本
func (p *Parser) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [OPTIONS] [SUBJECT...]\n\n", p.name)
	b.WriteString("Launches SUBJECT inside a console of the given size and relays its output.\n\n")
	b.WriteString("Options:\n")
	b.WriteString(p.flags.FlagUsages())
	return b.String()
}

// Hint 解析错误后的提示
func (p *Parser) Hint() string {
	return fmt.Sprintf("Try '%s --help' for more information.", p.name)
}
