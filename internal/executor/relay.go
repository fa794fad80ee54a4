package executor

import (
	"bufio"
	"io"
	"strings"
)

// relay 逐行把子进程输出转发到 w
// 行尾的 \n 或 \r\n 去掉后统一以 \n 写出, 最后一行即使没有换行符也会转发
// w 写失败后继续把 r 读空, 避免子进程因管道写满而阻塞
func relay(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if _, werr := io.WriteString(w, line+"\n"); werr != nil {
				io.Copy(io.Discard, br)
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
