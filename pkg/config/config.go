package config

// 控制台默认尺寸
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

// Options 一次运行的不可变选项, 由 Parser 构造后按值传递
type Options struct {
	Subject           string `mapstructure:"subject"`
	Width             int    `mapstructure:"width"`
	Height            int    `mapstructure:"height"`
	Verbose           bool   `mapstructure:"verbose"`
	PropagateExitCode bool   `mapstructure:"propagate_exit_code"` // 子进程退出码作为自身退出码
}

// Invocation 命令行解析结果
type Invocation struct {
	Options Options

	Help       bool     // -h / -? / --help
	SubjectSet bool     // 显式给出了 --subject
	Extra      []string // 显式 --subject 之外多出来的位置参数
}

// Dimensions 返回修正后的宽高, 非正数回退为默认值
func (o Options) Dimensions() (width, height int) {
	width, height = o.Width, o.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}
