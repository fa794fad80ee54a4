package code

// ====================================================
// 错误码定义 (同时作为进程退出码)
// ====================================================

const (
	// 0: 成功
	Success = 0

	// 1: 内部错误
	ServerError = 1

	// 2-5: 运行期错误分类
	ParseError       = 2 // 命令行语法错误
	MissingSubject   = 3 // 未指定 subject
	ResolutionFailed = 4 // subject 中找不到存在的可执行文件
	LaunchFailed     = 5 // 子进程启动失败
)

// ====================================================
// 错误信息映射
// ====================================================

var Msg = map[int]string{
	Success:          "ok",
	ServerError:      "internal error",
	ParseError:       "invalid command line",
	MissingSubject:   "No subject given",
	ResolutionFailed: "Unable to determine target executable",
	LaunchFailed:     "Unable to start target executable",
}

// GetMsg 获取错误码对应的默认信息
func GetMsg(code int) string {
	msg, ok := Msg[code]
	if ok {
		return msg
	}
	return Msg[ServerError]
}
