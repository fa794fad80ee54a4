package executor

import (
	"fmt"
	"os"
	"strings"

	"console-wrapper/pkg/code"
	"console-wrapper/pkg/e"
)

// Subject 解析后的目标: 可执行文件路径 + 参数串
type Subject struct {
	Path string
	Args string
}

func (s Subject) String() string {
	if s.Args == "" {
		return s.Path
	}
	return s.Path + " " + s.Args
}

// Resolve 把 "路径 + 参数" 组合串拆分为可执行文件和参数串
// 路径本身可能含空格 (如 C:\Program Files\...), 只能靠文件系统探测来消歧:
// 从第一个 token 开始逐个拼接, 第一个存在的文件即为可执行文件 (最短匹配优先)
func Resolve(subject string) (Subject, error) {
	// 1. 整串就是一个存在的文件 (无参数, 路径可含空格)
	if fileExists(subject) {
		return Subject{Path: subject}, nil
	}

	// 2. 按单个空格切分, 连续空格产生的空 token 同样参与拼接
	tokens := strings.Split(subject, " ")
	var candidate string
	for i, token := range tokens {
		if i == 0 {
			candidate = token
		} else {
			candidate += " " + token
		}
		if !fileExists(candidate) {
			continue
		}
		rest := subject[len(candidate):]
		if rest != "" {
			// 去掉紧跟在路径后的那个分隔符
			rest = rest[1:]
		}
		return Subject{Path: candidate, Args: rest}, nil
	}

	// 3. 没有任何前缀命中
	return Subject{}, e.New(code.ResolutionFailed, "", fmt.Errorf("no existing file in %q", subject))
}

// fileExists 只检查存在性 (目录不算), 不检查执行权限
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
